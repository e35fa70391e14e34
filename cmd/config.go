package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// DefaultOptions are the CLI's starting choices; the engine itself has none.
var DefaultOptions = core.Options{
	IncludeTables: true,
	PreserveLinks: true,
	IncludeMath:   true,
}

// loadOptionsFile reads conversion options from a YAML file. Keys missing
// from the file keep the values in base.
func loadOptionsFile(path string, base core.Options) (core.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Options{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	opts := base
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return core.Options{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return opts, nil
}

// optionFlags binds the per-option flags so explicit flags can override
// the config file.
type optionFlags struct {
	tables      bool
	links       bool
	images      bool
	math        bool
	frontmatter bool
}

func (o *optionFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&o.tables, "tables", DefaultOptions.IncludeTables, "Render tables as pipe tables")
	fs.BoolVar(&o.links, "links", DefaultOptions.PreserveLinks, "Keep internal article links as Markdown links")
	fs.BoolVar(&o.images, "images", DefaultOptions.IncludeImages, "Render images")
	fs.BoolVar(&o.math, "math", DefaultOptions.IncludeMath, "Render formulas as $TeX$")
	fs.BoolVar(&o.frontmatter, "frontmatter", DefaultOptions.IncludeFrontmatter, "Prepend a YAML metadata header")
}

// resolve merges defaults, the optional config file, then explicitly set
// flags, in that order of precedence.
func (o *optionFlags) resolve(fs *pflag.FlagSet, configPath string) (core.Options, error) {
	opts := DefaultOptions
	if configPath != "" {
		var err error
		opts, err = loadOptionsFile(configPath, opts)
		if err != nil {
			return core.Options{}, err
		}
	}

	if fs.Changed("tables") {
		opts.IncludeTables = o.tables
	}
	if fs.Changed("links") {
		opts.PreserveLinks = o.links
	}
	if fs.Changed("images") {
		opts.IncludeImages = o.images
	}
	if fs.Changed("math") {
		opts.IncludeMath = o.math
	}
	if fs.Changed("frontmatter") {
		opts.IncludeFrontmatter = o.frontmatter
	}
	return opts, nil
}
