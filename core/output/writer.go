// Package output handles file naming and writing for converted articles.
// Filenames are derived from the article title (e.g. "Go (language)" →
// go-language.md).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// fallbackName is used when a title has no usable characters.
const fallbackName = "article"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under a name derived from the article title.
func (w *Writer) Write(title string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(title)+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename converts a title into a lowercase dash-separated slug.
// Example: "C++ (programming language)" → c-programming-language
func Filename(title string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return fallbackName
	}
	return slug
}
