package content

import (
	"bytes"
	"testing"

	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRenderPlain(t *testing.T) {
	nodes := Render(cv.Plain("Engineer & <friends>"))

	require.Len(t, nodes, 1)
	assert.Equal(t, "Engineer & <friends>", nodes[0].Text)
	assert.False(t, nodes[0].Link)
}

func TestRenderLink(t *testing.T) {
	nodes := Render(cv.Link("site", "example.com/path?q=1"))

	require.Len(t, nodes, 1)
	assert.Equal(t, Node{Text: "site", URL: "example.com/path?q=1", Link: true}, nodes[0])
}

func TestRenderListConcatenatesInOrder(t *testing.T) {
	value := cv.List(
		cv.Plain("Built "),
		cv.Link("Go", "https://go.dev"),
		cv.Plain(" tooling"),
	)

	nodes := Render(value)

	assert.Equal(t, []Node{
		{Text: "Built "},
		{Text: "Go", URL: "https://go.dev", Link: true},
		{Text: " tooling"},
	}, nodes)
}

func TestRenderDeepNesting(t *testing.T) {
	value := cv.List(cv.List(cv.List(cv.Plain("a")), cv.Plain("b")), cv.Link("c", "u"))

	nodes := Render(value)

	assert.Equal(t, []Node{{Text: "a"}, {Text: "b"}, {Text: "c", URL: "u", Link: true}}, nodes)
}

func TestRenderEmptyList(t *testing.T) {
	assert.Empty(t, Render(cv.List()))
}

func TestPlainText(t *testing.T) {
	value := cv.List(cv.Plain("Staff "), cv.Link("Engineer", "https://x.example"))

	assert.Equal(t, "Staff Engineer", PlainText(value))
}

func TestHTML(t *testing.T) {
	nodes := HTML(Render(cv.List(cv.Plain("a < b "), cv.Link("x", "https://x.example/?a=1&b=2"))))
	require.Len(t, nodes, 2)

	var buf bytes.Buffer
	for _, n := range nodes {
		require.NoError(t, html.Render(&buf, n))
	}

	assert.Equal(t, `a &lt; b <a href="https://x.example/?a=1&amp;b=2">x</a>`, buf.String())
}

func TestRenderLinkWithEmptyTarget(t *testing.T) {
	nodes := Render(cv.Link("label", ""))

	require.Len(t, nodes, 1)
	assert.True(t, nodes[0].Link)
	assert.Empty(t, nodes[0].URL)
}
