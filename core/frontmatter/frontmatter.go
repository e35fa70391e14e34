// Package frontmatter builds and reads the YAML header prefixed to
// converted articles.
package frontmatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/gaurav-prasanna/wikimd/core/links"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Metadata is the set of keys written into the header.
type Metadata struct {
	Title    string `yaml:"title" json:"title"`
	Source   string `yaml:"source" json:"source"`
	Date     string `yaml:"date" json:"date"`
	Language string `yaml:"language" json:"language"`
}

// Render produces the header block for an article. The title is
// double-quoted with embedded quotes escaped; the source URL is written
// verbatim; the date is now in UTC as YYYY-MM-DD.
func Render(title, sourceURL string, now time.Time) string {
	lines := []string{
		delimiter,
		`title: "` + strings.ReplaceAll(title, `"`, `\"`) + `"`,
		"source: " + sourceURL,
		"date: " + now.UTC().Format(time.DateOnly),
		"language: " + links.Language(sourceURL),
		delimiter,
		"",
	}
	return strings.Join(lines, "\n")
}

// Split separates a leading header from the Markdown body. ok is false when
// the text does not start with a header.
func Split(markdown string) (header, body string, ok bool) {
	if !strings.HasPrefix(markdown, delimiter+"\n") {
		return "", markdown, false
	}
	rest := markdown[len(delimiter)+1:]
	end := strings.Index(rest, "\n"+delimiter+"\n")
	if end < 0 {
		return "", markdown, false
	}
	return rest[:end], rest[end+len(delimiter)+2:], true
}

// Parse reads the header at the start of markdown, if any.
func Parse(markdown string) (Metadata, bool, error) {
	header, _, ok := Split(markdown)
	if !ok {
		return Metadata{}, false, nil
	}
	// Titles are quoted but not YAML-escaped, so a backslash in a title
	// is literal (C:\Windows) and the raw line wins over YAML decoding.
	raw, found := parseLines(header)
	var meta Metadata
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		if !found {
			return Metadata{}, true, fmt.Errorf("parsing frontmatter: %w", err)
		}
		return raw, true, nil
	}
	if strings.Contains(raw.Title, `\`) {
		meta.Title = raw.Title
	}
	return meta, true, nil
}

// parseLines reads "key: value" lines in the layout Render writes.
func parseLines(header string) (Metadata, bool) {
	var meta Metadata
	found := false
	for _, line := range strings.Split(header, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "title":
			if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
				value = strings.ReplaceAll(value[1:len(value)-1], `\"`, `"`)
			}
			meta.Title = value
		case "source":
			meta.Source = value
		case "date":
			meta.Date = value
		case "language":
			meta.Language = value
		default:
			continue
		}
		found = true
	}
	return meta, found
}
