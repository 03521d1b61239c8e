// Package sections renders the parts of a resume page as HTML node trees.
//
// Every renderer is a pure function of its slice of the document. A renderer
// returns nil when its fragment is omitted, so callers can compose fragments
// without producing empty placeholders.
package sections

import (
	"bytes"

	"github.com/nikogura/resume-page/pkg/content"
	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// element creates a detached element node with an optional class attribute.
func element(tag, class string, attrs ...html.Attribute) (node *html.Node) {
	node = &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if class != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: class})
	}
	node.Attr = append(node.Attr, attrs...)
	return node
}

func text(s string) (node *html.Node) {
	node = &html.Node{Type: html.TextNode, Data: s}
	return node
}

func attr(key, val string) (a html.Attribute) {
	a = html.Attribute{Key: key, Val: val}
	return a
}

// appendChildren appends the non-nil children in order.
func appendChildren(parent *html.Node, children ...*html.Node) {
	for _, child := range children {
		if child != nil {
			parent.AppendChild(child)
		}
	}
}

// withText creates an element holding the normalized content of value.
func withText(tag, class string, value cv.Text) (node *html.Node) {
	node = element(tag, class)
	appendChildren(node, content.HTML(content.Render(value))...)
	return node
}

// blank reports whether t would render no text at all.
func blank(t *cv.Text) (ok bool) {
	if t == nil {
		ok = true
		return ok
	}

	switch t.Kind {
	case cv.KindPlain:
		ok = t.Value == ""
	case cv.KindList:
		ok = true
		for i := range t.Items {
			if !blank(&t.Items[i]) {
				ok = false
				break
			}
		}
	}
	return ok
}

// link creates an anchor with visible text.
func link(class, href, label string) (node *html.Node) {
	node = element("a", class, attr("href", href))
	node.AppendChild(text(label))
	return node
}

// highlights renders an ordered highlight list, or nil when there is none.
func highlights(items []cv.Text) (node *html.Node) {
	if len(items) == 0 {
		return node
	}

	node = element("ul", "highlights")
	for _, item := range items {
		node.AppendChild(withText("li", "", item))
	}
	return node
}

// Render serializes a fragment to HTML.
func Render(node *html.Node) (out string, err error) {
	if node == nil {
		return out, err
	}

	var buf bytes.Buffer
	err = html.Render(&buf, node)
	if err != nil {
		err = errors.Wrap(err, "failed to render html")
		return out, err
	}

	out = buf.String()
	return out, err
}
