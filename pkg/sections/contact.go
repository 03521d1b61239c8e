package sections

import (
	"net/url"
	"strings"

	"github.com/nikogura/resume-page/pkg/cv"
	"golang.org/x/net/html"
)

// DefaultMailSubject is the subject preset on the email link.
const DefaultMailSubject = "Regarding your resume"

// Contact renders the name heading with the contact details around it. Each
// contact field is left out entirely when it is not set.
func Contact(name string, info cv.ContactInfo, opts Options) (node *html.Node) {
	node = element("div", "contact_info")

	left := element("div", "left")
	if info.Location != "" {
		location := element("div", "location")
		location.AppendChild(text(info.Location))
		left.AppendChild(location)
	}
	if info.Phone != "" {
		phone := element("div", "phone")
		phone.AppendChild(link("", phoneHref(info.Phone), info.Phone))
		left.AppendChild(phone)
	}

	heading := element("h1", "name")
	heading.AppendChild(text(name))

	right := element("div", "right")
	if info.Email != "" {
		email := element("div", "email")
		email.AppendChild(link("", mailHref(info.Email, opts.mailSubject()), info.Email))
		right.AppendChild(email)
	}
	if info.Website != "" {
		website := element("div", "website")
		website.AppendChild(link("", info.WebsiteURL(), info.Website))
		right.AppendChild(website)
	}
	if info.LinkedIn != "" {
		profile := element("div", "linkedin")
		anchor := element("a", "", attr("href", info.LinkedInURL()))
		anchor.AppendChild(element("span", "icon icon-linkedin", attr("aria-hidden", "true")))
		anchor.AppendChild(text(info.LinkedIn))
		profile.AppendChild(anchor)
		right.AppendChild(profile)
	}

	appendChildren(node, left, heading, right)
	return node
}

// phoneHref builds a tel: URI, dropping visual separators.
func phoneHref(phone string) (href string) {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, phone)
	href = "tel:" + digits
	return href
}

// mailHref builds a mailto: URI with a preset subject.
func mailHref(email, subject string) (href string) {
	href = "mailto:" + email
	if subject != "" {
		href += "?subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
	}
	return href
}
