package sections

import (
	"github.com/nikogura/resume-page/pkg/cv"
	"golang.org/x/net/html"
)

// TitleSummary renders the headline and summary. Empty values count as
// absent; it returns nil when both are absent.
func TitleSummary(title, summary *cv.Text) (node *html.Node) {
	if blank(title) && blank(summary) {
		return node
	}

	node = element("div", "title_summary")
	if !blank(title) {
		node.AppendChild(withText("h2", "title", *title))
	}
	if !blank(summary) {
		node.AppendChild(withText("p", "cv_summary", *summary))
	}
	return node
}
