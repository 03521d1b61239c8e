package cv

// Document is the complete resume record.
type Document struct {
	Name        string         `json:"name"`
	ContactInfo ContactInfo    `json:"contact_info"`
	Title       *Text          `json:"title,omitempty"`
	Summary     *Text          `json:"summary,omitempty"`
	Keywords    []KeywordGroup `json:"keywords,omitempty"`
	Positions   []Position     `json:"positions"`
	Showcases   []Showcase     `json:"showcases,omitempty"`
}

// ContactInfo holds the independently optional contact fields.
type ContactInfo struct {
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// PartialDate is a calendar date where only the year is mandatory.
type PartialDate struct {
	Year  int  `json:"year"`
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`
}

// Position is a single entry of the employment history. A nil End means the
// position is ongoing.
type Position struct {
	Company    Text         `json:"company"`
	Title      Text         `json:"title"`
	Start      PartialDate  `json:"start"`
	End        *PartialDate `json:"end,omitempty"`
	Summary    *Text        `json:"summary,omitempty"`
	Highlights []Text       `json:"highlights,omitempty"`
}

// ShowcaseItem is a single project inside a Showcase.
type ShowcaseItem struct {
	Name       Text   `json:"name"`
	URL        string `json:"url,omitempty"`
	Highlights []Text `json:"highlights,omitempty"`
}

// Showcase is a named group of projects.
type Showcase struct {
	Name  Text           `json:"name"`
	Items []ShowcaseItem `json:"items"`
}

// KeywordGroup is rendered as its own list.
type KeywordGroup []Text
