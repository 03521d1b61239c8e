package sections

import (
	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/nikogura/resume-page/pkg/datefmt"
	"golang.org/x/net/html"
)

// PositionsHeading titles the employment history.
const PositionsHeading = "Position History"

// Positions renders the employment history in the order given.
func Positions(positions []cv.Position, dates *datefmt.Formatter) (node *html.Node) {
	node = element("div", "showcase positions")

	heading := element("h2", "showcase_name")
	heading.AppendChild(text(PositionsHeading))
	node.AppendChild(heading)

	for _, position := range positions {
		node.AppendChild(positionBlock(position, dates))
	}
	return node
}

func positionBlock(position cv.Position, dates *datefmt.Formatter) (node *html.Node) {
	node = element("div", "position")

	details := element("div", "position_details")
	duration := element("div", "position_duration")
	duration.AppendChild(text(dates.Duration(position.Start, position.End)))
	appendChildren(details, withText("div", "position_title", position.Title), duration)

	var summary *html.Node
	if !blank(position.Summary) {
		summary = withText("div", "position_summary", *position.Summary)
	}

	appendChildren(node,
		withText("h3", "company", position.Company),
		details,
		summary,
		highlights(position.Highlights),
	)
	return node
}
