// Package pageurl builds the URLs used by the scraper.
//
// The source site paginates with path segments (/page/N/) while the service
// exposes adjacent pages with a query parameter (?page=N). Both conventions are
// kept deliberately separate.
package pageurl

import (
	"strconv"
	"strings"
	"unicode"
)

// ResolveRequestURL returns the URL of the requested archive page. baseURL is
// expected to end with "/".
func ResolveRequestURL(baseURL string, pageIndex int) string {
	if pageIndex == 1 {
		return baseURL
	}
	return baseURL + "page/" + strconv.Itoa(pageIndex) + "/"
}

// BuildQueryURL returns schemeAndHost + path + "?page=" + pageIndex.
func BuildQueryURL(schemeAndHost, path string, pageIndex int) string {
	return schemeAndHost + path + "?page=" + strconv.Itoa(pageIndex)
}

// DeriveIndex removes every non-digit from href and parses the rest. It
// returns nil when no digits remain or the number does not fit an int.
func DeriveIndex(href string) *int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, href)
	if digits == "" {
		return nil
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}

// ParsePageParam interprets the inbound "page" parameter. Absent, non-numeric
// and non-positive values fall back to the first page.
func ParsePageParam(raw string) int {
	raw = strings.TrimFunc(raw, unicode.IsSpace)
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
