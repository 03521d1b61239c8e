package sections

import (
	"strings"

	"golang.org/x/net/html"
)

func intPtr(i int) *int { return &i }

func hasClass(n *html.Node, class string) (ok bool) {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return ok
}

// findAll returns every element below root (inclusive) carrying class, in
// document order.
func findAll(root *html.Node, class string) (found []*html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func findTag(root *html.Node, tag string) (found []*html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func textOf(n *html.Node) (s string) {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	s = b.String()
	return s
}

func attrOf(n *html.Node, key string) (val string) {
	for _, a := range n.Attr {
		if a.Key == key {
			val = a.Val
		}
	}
	return val
}

func childClasses(n *html.Node) (classes []string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			classes = append(classes, attrOf(c, "class"))
		}
	}
	return classes
}
