// Package convert orchestrates a single article conversion:
// applicability check → content lookup → sanitize → render → cleanup.
//
// Every outcome, including a panic inside the renderers, is reported as a
// core.Result; Convert never returns an error or panics.
package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/frontmatter"
	"github.com/gaurav-prasanna/wikimd/core/links"
	"github.com/gaurav-prasanna/wikimd/core/markdown"
	"github.com/gaurav-prasanna/wikimd/core/normalize"
	"github.com/gaurav-prasanna/wikimd/core/sanitize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Converter turns article documents into Markdown. It holds no per-call
// state and is safe for concurrent use.
type Converter struct {
	normalizer core.Normalizer
	now        func() time.Time
	logger     zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithClock sets the time source used for frontmatter dates.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

// WithLogger sets the logger conversions report to.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Converter) { c.logger = logger }
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		normalizer: normalize.New(),
		now:        time.Now,
		logger:     log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs one conversion of doc with the given options.
func (c *Converter) Convert(doc core.Document, opts core.Options) (result core.Result) {
	logger := c.logger.With().Str("url", doc.URL()).Logger()

	defer func() {
		if r := recover(); r != nil {
			result = core.Failed(core.InternalRenderingError, fmt.Sprint(r))
		}
		if result.Success {
			logger.Debug().
				Str("title", result.Title).
				Int("output_size", len(result.Markdown)).
				Msg("Conversion completed")
			return
		}
		logger.Warn().
			Str("kind", string(result.Kind)).
			Str("reason", result.Reason).
			Msg("Conversion failed")
	}()

	if !links.IsArticlePath(doc.Path()) {
		return core.Failed(core.NotApplicable, core.ErrNotApplicable.Error())
	}

	title := doc.Title()
	root, ok := doc.ContentRoot()
	if !ok || root == nil {
		return core.Failed(core.ContentNotFound, core.ErrContentNotFound.Error())
	}

	clean := sanitize.Sanitize(root)

	var b strings.Builder
	if opts.IncludeFrontmatter {
		b.WriteString(frontmatter.Render(title, doc.URL(), c.now()))
	}
	b.WriteString("# " + title + "\n\n")
	b.WriteString(markdown.Block(clean, opts, 0))

	return core.Succeeded(c.normalizer.Normalize(b.String()), title)
}
