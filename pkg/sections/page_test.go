package sections

import (
	"testing"

	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/nikogura/resume-page/pkg/datefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageMinimalRecord(t *testing.T) {
	doc, err := cv.Decode([]byte(`{
		"name": "Ada Lovelace",
		"contact_info": {"website": "ada.dev"},
		"positions": [{"company": "Analytical Engines", "title": "Engineer", "start": {"year": 2020}}]
	}`))
	require.NoError(t, err)

	node := Page(doc, Options{Dates: datefmt.MustNew("en-US")})

	assert.Equal(t, []string{"contact_info", "showcase positions"}, childClasses(node))
	assert.Equal(t, "Ada Lovelace", textOf(findTag(node, "h1")[0]))

	for _, class := range []string{"location", "phone", "email", "title_summary", "keywords_section"} {
		assert.Empty(t, findAll(node, class), class)
	}

	website := findTag(findAll(node, "website")[0], "a")[0]
	assert.Equal(t, "https://ada.dev/", attrOf(website, "href"))

	positions := findAll(node, "position")
	require.Len(t, positions, 1)
	assert.Equal(t, "2020 - Present", textOf(findAll(positions[0], "position_duration")[0]))
}

func TestPageNullOptionals(t *testing.T) {
	doc, err := cv.Decode([]byte(`{
		"name": "Ada Lovelace",
		"title": null,
		"summary": "",
		"contact_info": {"website": null, "email": "ada@example.com"},
		"positions": [{"company": "Analytical Engines", "title": "Engineer", "start": {"year": 2020, "month": null}, "end": null, "summary": null}]
	}`))
	require.NoError(t, err)

	node := Page(doc, Options{Dates: datefmt.MustNew("en-US")})

	assert.Equal(t, []string{"contact_info", "showcase positions"}, childClasses(node))
	assert.Empty(t, findAll(node, "website"))
	assert.Len(t, findAll(node, "email"), 1)
	assert.Empty(t, findAll(node, "position_summary"))
	assert.Equal(t, "2020 - Present", textOf(findAll(node, "position_duration")[0]))
}

func TestPageCompositionOrder(t *testing.T) {
	title := cv.Plain("Engineer")
	doc := cv.Document{
		Name:      "Grace",
		Title:     &title,
		Positions: []cv.Position{{Company: cv.Plain("Navy"), Title: cv.Plain("Admiral"), Start: cv.PartialDate{Year: 1943}}},
		Showcases: []cv.Showcase{
			{Name: cv.Plain("First")},
			{Name: cv.Plain("Second")},
		},
		Keywords: []cv.KeywordGroup{{cv.Plain("COBOL")}},
	}

	node := Page(doc, Options{})

	assert.Equal(t, []string{
		"contact_info",
		"title_summary",
		"showcase positions",
		"showcase",
		"showcase",
		"keywords_section",
	}, childClasses(node))

	names := findAll(node, "showcase_name")
	require.Len(t, names, 3)
	assert.Equal(t, "First", textOf(names[1]))
	assert.Equal(t, "Second", textOf(names[2]))
}

func TestPageIsRepeatable(t *testing.T) {
	doc, err := cv.Decode([]byte(`{"name": "A", "contact_info": {}, "positions": []}`))
	require.NoError(t, err)

	first, err := Render(Page(doc, Options{}))
	require.NoError(t, err)
	second, err := Render(Page(doc, Options{}))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
