package cv

import (
	"net/url"
	"strings"
)

// LinkedInBaseURL prefixes a bare LinkedIn handle.
const LinkedInBaseURL = "https://www.linkedin.com/in/"

// WebsiteURL returns the website as an absolute URL: https:// is prefixed
// when no scheme is given, and the path always ends in a slash. An empty
// website yields an empty string.
func (c ContactInfo) WebsiteURL() (absolute string) {
	absolute = CanonicalURL(c.Website)
	return absolute
}

// LinkedInURL returns the profile URL for the LinkedIn handle.
func (c ContactInfo) LinkedInURL() (profile string) {
	handle := strings.TrimSpace(c.LinkedIn)
	if handle == "" {
		return profile
	}

	if IsURL(handle) {
		profile = handle
		return profile
	}

	profile = LinkedInBaseURL + strings.Trim(handle, "/") + "/"
	return profile
}

// CanonicalURL guarantees a scheme and a trailing path slash.
func CanonicalURL(raw string) (canonical string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return canonical
	}

	if !IsURL(raw) {
		raw = "https://" + strings.TrimPrefix(raw, "//")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		canonical = raw
		if !strings.HasSuffix(canonical, "/") {
			canonical += "/"
		}
		return canonical
	}

	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
		parsed.RawPath = ""
	}

	canonical = parsed.String()
	return canonical
}
