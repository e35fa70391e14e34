// Package cmd: convert command.
// This is the main command that orchestrates a conversion:
// fetch → extract → convert → render → write.
//
// It handles flag validation, option resolution and renderer selection.
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/convert"
	"github.com/gaurav-prasanna/wikimd/core/extract"
	"github.com/gaurav-prasanna/wikimd/core/fetch"
	"github.com/gaurav-prasanna/wikimd/core/output"
	"github.com/gaurav-prasanna/wikimd/core/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagPageURL   string
	flagConfig    string
	flagFormat    string
	flagOutputDir string
	flagStdout    bool
	flagOptions   optionFlags
)

var convertCmd = &cobra.Command{
	Use:   "convert <url|file>",
	Short: "Convert a Wikipedia article to Markdown",
	Long: `Convert fetches (or reads) an article page, strips page chrome, renders the
article body as Markdown and writes it in the chosen format.

Examples:
  wikimd convert https://en.wikipedia.org/wiki/Go_(programming_language)
  wikimd convert https://fr.wikipedia.org/wiki/Paris --frontmatter --images
  wikimd convert saved.html --url https://en.wikipedia.org/wiki/Gopher --stdout
  wikimd convert https://en.wikipedia.org/wiki/Pi --format pdf --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flagOptions.register(convertCmd.Flags())

	convertCmd.Flags().StringVar(&flagPageURL, "url", "", "Page URL when converting a saved file (default: the argument if it is a URL)")
	convertCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file with conversion options")
	convertCmd.Flags().StringVar(&flagFormat, "format", "markdown", "Output format: markdown, json or pdf")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	convertCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write to stdout instead of a file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	location := args[0]

	opts, err := flagOptions.resolve(cmd.Flags(), flagConfig)
	if err != nil {
		return err
	}

	renderer, err := render.ForFormat(flagFormat)
	if err != nil {
		return err
	}
	if flagStdout && renderer.Extension() == ".pdf" {
		return fmt.Errorf("--stdout cannot be used with --format pdf")
	}

	pageURL := flagPageURL
	if pageURL == "" && isURL(location) {
		pageURL = location
	}

	result, err := convertLocation(cmd.Context(), location, pageURL, opts)
	if err != nil {
		return err
	}

	data, err := renderer.Render(result)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if flagStdout {
		return writeStdout(cmd.OutOrStdout(), data)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(result.Title, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// convertLocation runs one page through fetch, extract and convert.
// A failed conversion is returned as an error carrying its reason.
func convertLocation(ctx context.Context, location, pageURL string, opts core.Options) (core.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Fetch
	fetched, err := fetch.For(location).Fetch(ctx, location)
	if err != nil {
		return core.Result{}, fmt.Errorf("fetch: %w", err)
	}
	if pageURL == "" {
		pageURL = fetched.URL
	}

	// 2. Locate the article
	page, err := extract.Parse(fetched.HTML, pageURL)
	if err != nil {
		return core.Result{}, fmt.Errorf("extract: %w", err)
	}

	// 3. Convert
	log.Debug().Str("location", location).Interface("options", opts).Msg("Converting page")
	result := convert.New().Convert(page, opts)
	if !result.Success {
		return result, fmt.Errorf("convert: %w", result.Err())
	}
	return result, nil
}

func writeStdout(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
