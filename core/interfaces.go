// Package core defines the shared types and interfaces for wikimd.
// The conversion engine is built from small pure stages; the interfaces
// here describe the document boundary and the glue around it.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/wikimd/core/tree"
)

// Options toggles which constructs the engine renders.
// The engine never fills in defaults; callers decide every flag.
type Options struct {
	IncludeTables      bool `json:"includeTables" yaml:"includeTables"`
	PreserveLinks      bool `json:"preserveLinks" yaml:"preserveLinks"`
	IncludeImages      bool `json:"includeImages" yaml:"includeImages"`
	IncludeMath        bool `json:"includeMath" yaml:"includeMath"`
	IncludeFrontmatter bool `json:"includeFrontmatter" yaml:"includeFrontmatter"`
}

// FailureKind classifies why a conversion did not succeed.
type FailureKind string

const (
	NotApplicable          FailureKind = "not_applicable"
	ContentNotFound        FailureKind = "content_not_found"
	InternalRenderingError FailureKind = "internal_rendering_error"
)

var (
	// ErrNotApplicable is reported for special/administrative pages.
	ErrNotApplicable = errors.New("not an article page")
	// ErrContentNotFound is reported when the article body is missing.
	ErrContentNotFound = errors.New("content not found")
	// ErrRendering wraps a recovered panic from the renderers.
	ErrRendering = errors.New("rendering failed")
)

// Result is the outcome of one conversion. It is either a success carrying
// the Markdown and title, or a failure carrying a human-readable reason.
type Result struct {
	Success  bool        `json:"success"`
	Markdown string      `json:"markdown,omitempty"`
	Title    string      `json:"title,omitempty"`
	Reason   string      `json:"error,omitempty"`
	Kind     FailureKind `json:"kind,omitempty"`
}

// Succeeded builds a successful Result.
func Succeeded(markdown, title string) Result {
	return Result{Success: true, Markdown: markdown, Title: title}
}

// Failed builds a failed Result with the given kind and reason.
func Failed(kind FailureKind, reason string) Result {
	return Result{Kind: kind, Reason: reason}
}

// Err returns nil for a successful result, otherwise an error that wraps
// the sentinel matching the failure kind.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	switch r.Kind {
	case NotApplicable:
		return ErrNotApplicable
	case ContentNotFound:
		return ErrContentNotFound
	default:
		return fmt.Errorf("%w: %s", ErrRendering, r.Reason)
	}
}

// Document is the page context a conversion runs against.
type Document interface {
	// Path is the URL path of the page, used for applicability checks.
	Path() string
	// URL is the full page URL, recorded in frontmatter.
	URL() string
	// Title is the trimmed article title.
	Title() string
	// ContentRoot returns the article body, or false when it is missing.
	ContentRoot() (*tree.Node, bool)
}

// FetchResult holds the raw HTML of an acquired page.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher acquires the raw HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (*FetchResult, error)
}

// Normalizer tidies assembled Markdown text.
type Normalizer interface {
	Normalize(markdown string) string
}

// Renderer converts a successful Result into an export format.
type Renderer interface {
	Render(result Result) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
