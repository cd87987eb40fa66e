package goquery

import "strings"

// resolveLink makes an href absolute by prefixing the site's base URL when
// the href does not already carry a scheme.
func resolveLink(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return baseURL + href
}

// categoryFrom derives the category from an absolute link: the path segment
// at index 3 when splitting on "/" (scheme, empty, host, first segment).
// Links with fewer segments have no category.
func categoryFrom(link string) string {
	parts := strings.Split(link, "/")
	if len(parts) > 3 {
		return parts[3]
	}
	return ""
}
