package sections

import (
	"github.com/nikogura/resume-page/pkg/cv"
	"golang.org/x/net/html"
)

// Showcase renders one named group of projects, items in declared order.
func Showcase(showcase cv.Showcase) (node *html.Node) {
	node = element("div", "showcase")
	node.AppendChild(withText("h2", "showcase_name", showcase.Name))

	for _, item := range showcase.Items {
		block := element("div", "showcase_item")

		heading := element("div", "showcase_content")
		heading.AppendChild(withText("h3", "showcase_item_name", item.Name))
		if item.URL != "" {
			heading.AppendChild(link("showcase_item_url", item.URL, item.URL))
		}

		appendChildren(block, heading, highlights(item.Highlights))
		node.AppendChild(block)
	}
	return node
}
