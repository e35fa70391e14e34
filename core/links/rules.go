// Package links: URL rules for article pages.
// Provides helpers to classify hrefs, canonicalize internal links,
// and read page properties from Wikipedia URLs.
package links

import (
	"net/url"
	"regexp"
	"strings"
)

// CanonicalBase is the host internal article links are resolved against.
const CanonicalBase = "https://en.wikipedia.org"

// articlePrefix marks a root-relative content path.
const articlePrefix = "/wiki/"

// DefaultLanguage is used when no language subdomain can be read.
const DefaultLanguage = "en"

// nonArticlePrefixes are special and administrative namespaces.
var nonArticlePrefixes = []string{
	"/wiki/Special:",
	"/wiki/Talk:",
	"/wiki/Wikipedia:",
	"/wiki/Help:",
	"/wiki/Portal:",
	"/wiki/Category:",
	"/wiki/File:",
	"/wiki/Template:",
}

var languageRegex = regexp.MustCompile(`//([a-z]{2,3})\.wikipedia\.org`)

// Kind classifies a link target.
type Kind int

const (
	Missing  Kind = iota // no href at all
	Internal             // root-relative content path
	External             // absolute http(s) URL
	Anchor               // same-page fragment
	Other                // anything else (relative, mailto:, ...)
)

// Classify reports what kind of target href is.
func Classify(href string) Kind {
	switch {
	case href == "":
		return Missing
	case strings.HasPrefix(href, articlePrefix):
		return Internal
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return External
	case strings.HasPrefix(href, "#"):
		return Anchor
	default:
		return Other
	}
}

// Canonical rewrites an internal path into an absolute article URL.
func Canonical(path string) string {
	return CanonicalBase + path
}

// SecureSrc turns a protocol-relative source into an explicit https URL.
func SecureSrc(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

// Language extracts the language subdomain of a Wikipedia URL.
// Malformed or foreign URLs fall back to DefaultLanguage.
func Language(rawURL string) string {
	if m := languageRegex.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return DefaultLanguage
}

// IsArticlePath checks that a path is not a special or administrative page.
func IsArticlePath(path string) bool {
	for _, prefix := range nonArticlePrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// PathOf returns the path component of a URL, or the raw string when it
// does not parse.
func PathOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return parsed.Path
}
