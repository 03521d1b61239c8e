package cv

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Kind discriminates the three shapes a Text can take.
type Kind int

const (
	// KindPlain is a bare string.
	KindPlain Kind = iota
	// KindLink is a labeled hyperlink.
	KindLink
	// KindList is an ordered sequence of Text values.
	KindList
)

// Text is the aggregated text value used for every human-authored field. In
// JSON it is a string, a {"text", "url"} object, or an array of either.
type Text struct {
	Kind  Kind
	Value string // plain text, or the link label
	URL   string
	Items []Text
}

// Plain returns a plain text value.
func Plain(s string) (t Text) {
	t = Text{Kind: KindPlain, Value: s}
	return t
}

// Link returns a hyperlink value.
func Link(label, url string) (t Text) {
	t = Text{Kind: KindLink, Value: label, URL: url}
	return t
}

// List returns an ordered sequence of values.
func List(items ...Text) (t Text) {
	t = Text{Kind: KindList, Items: items}
	return t
}

// Ptr is a convenience for the optional Text fields of the model.
func Ptr(t Text) (p *Text) {
	p = &t
	return p
}

type linkJSON struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// UnmarshalJSON decodes any of the three accepted shapes.
func (t *Text) UnmarshalJSON(data []byte) (err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		err = errors.New("empty text value")
		return err
	}

	switch trimmed[0] {
	case '"':
		var s string
		err = json.Unmarshal(trimmed, &s)
		if err != nil {
			err = errors.Wrap(err, "failed to decode text string")
			return err
		}
		*t = Plain(s)
	case '{':
		var l linkJSON
		err = json.Unmarshal(trimmed, &l)
		if err != nil {
			err = errors.Wrap(err, "failed to decode link")
			return err
		}
		*t = Link(l.Text, l.URL)
	case '[':
		var items []Text
		err = json.Unmarshal(trimmed, &items)
		if err != nil {
			return err
		}
		*t = List(items...)
	default:
		err = errors.Errorf("text must be a string, link or list, got %s", string(trimmed))
		return err
	}

	return err
}

// MarshalJSON writes the value back in the shape it was decoded from.
func (t Text) MarshalJSON() (data []byte, err error) {
	switch t.Kind {
	case KindLink:
		data, err = json.Marshal(linkJSON{Text: t.Value, URL: t.URL})
	case KindList:
		items := t.Items
		if items == nil {
			items = []Text{}
		}
		data, err = json.Marshal(items)
	default:
		data, err = json.Marshal(t.Value)
	}
	return data, err
}
