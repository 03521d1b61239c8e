// Package content resolves aggregated text values into display nodes.
package content

import (
	"strings"

	"github.com/nikogura/resume-page/pkg/cv"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a single piece of displayable content: either text or a hyperlink.
type Node struct {
	Text string
	URL  string
	Link bool
}

// Render flattens a value into display nodes in order. Links keep their
// target exactly as authored.
func Render(value cv.Text) (nodes []Node) {
	nodes = appendNodes(make([]Node, 0, 1), value)
	return nodes
}

func appendNodes(nodes []Node, value cv.Text) (out []Node) {
	switch value.Kind {
	case cv.KindList:
		out = nodes
		for _, item := range value.Items {
			out = appendNodes(out, item)
		}
	case cv.KindLink:
		out = append(nodes, Node{Text: value.Value, URL: value.URL, Link: true})
	default:
		out = append(nodes, Node{Text: value.Value})
	}
	return out
}

// PlainText renders a value without markup, using link labels for links.
func PlainText(value cv.Text) (text string) {
	var b strings.Builder
	for _, node := range Render(value) {
		b.WriteString(node.Text)
	}
	text = b.String()
	return text
}

// HTML converts display nodes to detached HTML nodes, ready to be appended
// to a parent element.
func HTML(nodes []Node) (out []*html.Node) {
	out = make([]*html.Node, 0, len(nodes))
	for _, node := range nodes {
		text := &html.Node{Type: html.TextNode, Data: node.Text}
		if !node.Link {
			out = append(out, text)
			continue
		}

		anchor := &html.Node{
			Type:     html.ElementNode,
			Data:     "a",
			DataAtom: atom.A,
			Attr:     []html.Attribute{{Key: "href", Val: node.URL}},
		}
		anchor.AppendChild(text)
		out = append(out, anchor)
	}
	return out
}
