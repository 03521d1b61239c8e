// Package meta stamps resume data into the page shell at build time.
package meta

import (
	"encoding/json"
	"strings"

	"github.com/nikogura/resume-page/pkg/content"
	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Placeholder tokens recognized in the page template.
const (
	TokenTitle       = "%TITLE%"
	TokenSocialTitle = "%OG_TITLE%"
	TokenSocialDesc  = "%OG_DESC%"
	TokenSocialURL   = "%OG_URL%"
)

// DefaultDescriptionField is the record field used for the social description.
const DefaultDescriptionField = "summary"

// Values are the unescaped strings substituted into the template.
type Values struct {
	Title             string
	SocialTitle       string
	SocialDescription string
	SocialURL         string
}

// Compute derives the template values from a raw record. descField is a
// gjson path into the record; text values of any shape are flattened.
func Compute(raw []byte, descField string) (values Values, err error) {
	if !gjson.ValidBytes(raw) {
		err = errors.New("resume record is not valid JSON")
		return values, err
	}

	var doc cv.Document
	doc, err = cv.Decode(raw)
	if err != nil {
		return values, err
	}

	if descField == "" {
		descField = DefaultDescriptionField
	}

	values.Title = doc.Name
	values.SocialTitle = strings.TrimSpace(doc.Name)
	if doc.Title != nil {
		if title := content.PlainText(*doc.Title); title != "" {
			values.SocialTitle = strings.TrimSpace(doc.Name + ": " + title)
		}
	}

	values.SocialDescription, err = field(raw, descField)
	if err != nil {
		return values, err
	}

	values.SocialURL = doc.ContactInfo.WebsiteURL()

	return values, err
}

// field looks up path in raw and flattens it to plain text.
func field(raw []byte, path string) (value string, err error) {
	result := gjson.GetBytes(raw, path)
	if !result.Exists() {
		return value, err
	}

	switch result.Type {
	case gjson.String:
		value = result.String()
	case gjson.JSON:
		var t cv.Text
		err = json.Unmarshal([]byte(result.Raw), &t)
		if err != nil {
			err = errors.Wrapf(err, "field %s is not a text value", path)
			return value, err
		}
		value = content.PlainText(t)
	case gjson.Null:
	default:
		value = result.String()
	}

	return value, err
}

//nolint:gochecknoglobals // Immutable replacer
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape encodes the five HTML-significant characters as entities.
func Escape(s string) (escaped string) {
	escaped = escaper.Replace(s)
	return escaped
}

// Apply replaces every placeholder token in template with its escaped value.
// Replacement is a single pass, so inserted values are never rescanned for
// tokens.
func Apply(template string, values Values) (out string) {
	replacer := strings.NewReplacer(
		TokenSocialTitle, Escape(values.SocialTitle),
		TokenSocialDesc, Escape(values.SocialDescription),
		TokenSocialURL, Escape(values.SocialURL),
		TokenTitle, Escape(values.Title),
	)
	out = replacer.Replace(template)
	return out
}
