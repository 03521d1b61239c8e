package sections

import (
	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/nikogura/resume-page/pkg/datefmt"
	"golang.org/x/net/html"
)

// Options carries the presentation settings shared by the renderers.
type Options struct {
	Dates       *datefmt.Formatter
	MailSubject string
}

func (o Options) mailSubject() (subject string) {
	subject = o.MailSubject
	if subject == "" {
		subject = DefaultMailSubject
	}
	return subject
}

func (o Options) dates() (dates *datefmt.Formatter) {
	dates = o.Dates
	if dates == nil {
		dates = datefmt.MustNew(datefmt.DefaultLocale)
	}
	return dates
}

// Page composes the whole document: contact, title and summary, positions,
// each showcase, then keywords.
func Page(doc cv.Document, opts Options) (node *html.Node) {
	node = element("div", "cv")

	appendChildren(node,
		Contact(doc.Name, doc.ContactInfo, opts),
		TitleSummary(doc.Title, doc.Summary),
		Positions(doc.Positions, opts.dates()),
	)
	for _, showcase := range doc.Showcases {
		node.AppendChild(Showcase(showcase))
	}
	appendChildren(node, Keywords(doc.Keywords))

	return node
}
