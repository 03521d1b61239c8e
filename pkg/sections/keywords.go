package sections

import (
	"github.com/nikogura/resume-page/pkg/cv"
	"golang.org/x/net/html"
)

// KeywordsHeading titles the keyword lists.
const KeywordsHeading = "Keywords"

// Keywords renders one list per keyword group. It returns nil when there are
// no groups.
func Keywords(groups []cv.KeywordGroup) (node *html.Node) {
	if len(groups) == 0 {
		return node
	}

	node = element("div", "keywords_section")
	heading := element("h2", "")
	heading.AppendChild(text(KeywordsHeading))
	node.AppendChild(heading)

	for _, group := range groups {
		list := element("ul", "keywords")
		for _, keyword := range group {
			list.AppendChild(withText("li", "keyword", keyword))
		}
		node.AppendChild(list)
	}
	return node
}
