package meta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shell = `<title>%TITLE%</title>
<meta property="og:title" content="%OG_TITLE%">
<meta property="og:description" content="%OG_DESC%">
<meta property="og:url" content="%OG_URL%">
<h1>%TITLE%</h1>`

func record(extra string) []byte {
	return []byte(`{"name": "Ada Lovelace", "contact_info": {"website": "ada.dev"}, "positions": []` + extra + `}`)
}

func TestCompute(t *testing.T) {
	values, err := Compute(record(`, "title": ["Engineer, ", {"text": "Engines", "url": "https://e.example"}], "summary": "First programmer."`), "")
	require.NoError(t, err)

	assert.Equal(t, Values{
		Title:             "Ada Lovelace",
		SocialTitle:       "Ada Lovelace: Engineer, Engines",
		SocialDescription: "First programmer.",
		SocialURL:         "https://ada.dev/",
	}, values)
}

func TestComputeWithoutTitle(t *testing.T) {
	values, err := Compute(record(""), "")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", values.SocialTitle)
	assert.Empty(t, values.SocialDescription)
}

func TestComputeSocialTitleKeepsTitleText(t *testing.T) {
	values, err := Compute(record(`, "title": "Engineer :"`), "")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace: Engineer :", values.SocialTitle)

	values, err = Compute(record(`, "title": ": Engineer  "`), "")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace: : Engineer", values.SocialTitle)
}

func TestComputeEmptyTitle(t *testing.T) {
	values, err := Compute(record(`, "title": ""`), "")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", values.SocialTitle)

	values, err = Compute(record(`, "title": null`), "")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", values.SocialTitle)
}

func TestComputeDescriptionField(t *testing.T) {
	values, err := Compute(record(`, "summary": ["a ", {"text": "b", "url": "u"}]`), "contact_info.website")
	require.NoError(t, err)
	assert.Equal(t, "ada.dev", values.SocialDescription)

	values, err = Compute(record(`, "summary": ["a ", {"text": "b", "url": "u"}]`), "summary")
	require.NoError(t, err)
	assert.Equal(t, "a b", values.SocialDescription)

	values, err = Compute(record(""), "positions.#")
	require.NoError(t, err)
	assert.Equal(t, "0", values.SocialDescription)
}

func TestComputeWithoutWebsite(t *testing.T) {
	values, err := Compute([]byte(`{"name": "A", "contact_info": {}, "positions": []}`), "")
	require.NoError(t, err)

	assert.Empty(t, values.SocialURL)
}

func TestComputeInvalid(t *testing.T) {
	_, err := Compute([]byte("not json"), "")
	require.Error(t, err)

	_, err = Compute([]byte(`{"contact_info": {}, "positions": []}`), "")
	require.Error(t, err)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "A &amp; B &lt;x&gt; &quot;q&quot; &#39;s&#39;", Escape(`A & B <x> "q" 's'`))
	assert.Equal(t, "&amp;amp;", Escape("&amp;"))
}

func TestApplyReplacesEveryToken(t *testing.T) {
	out := Apply(shell, Values{
		Title:             "A & B",
		SocialTitle:       "A & B: <Dev>",
		SocialDescription: `He said "hi" & 'bye'`,
		SocialURL:         "https://ab.example/?x=1&y=2",
	})

	assert.Contains(t, out, "<title>A &amp; B</title>")
	assert.Contains(t, out, "<h1>A &amp; B</h1>")
	assert.Contains(t, out, `content="A &amp; B: &lt;Dev&gt;"`)
	assert.Contains(t, out, `content="He said &quot;hi&quot; &amp; &#39;bye&#39;"`)
	assert.Contains(t, out, `content="https://ab.example/?x=1&amp;y=2"`)

	for _, token := range []string{TokenTitle, TokenSocialTitle, TokenSocialDesc, TokenSocialURL} {
		assert.NotContains(t, out, token)
	}
}

func TestApplyLeavesNoRawCharacters(t *testing.T) {
	out := Apply("[%TITLE%][%OG_TITLE%][%OG_DESC%][%OG_URL%]", Values{
		Title:             `&<>"'`,
		SocialTitle:       `&<>"'`,
		SocialDescription: `&<>"'`,
		SocialURL:         `&<>"'`,
	})

	stripped := strings.NewReplacer("&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "", "&#39;", "").Replace(out)
	for _, raw := range []string{"&", "<", ">", `"`, "'"} {
		assert.NotContains(t, stripped, raw)
	}
}

func TestApplyDoesNotRescanValues(t *testing.T) {
	out := Apply("%TITLE%|%OG_DESC%", Values{
		Title:             "%OG_DESC%",
		SocialDescription: "desc",
	})

	assert.Equal(t, "%OG_DESC%|desc", out)
}
