package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/pipeline"
	"github.com/mhelmke/wikicloud/pkg/render/dot"
	"github.com/mhelmke/wikicloud/pkg/render/term"
)

// Output formats for the render command.
const (
	formatHTML = "html" // embeddable fragment, the wiki-facing output
	formatDOT  = "dot"  // Graphviz source
	formatSVG  = "svg"  // Graphviz-rendered vector image
	formatPNG  = "png"  // Graphviz-rendered raster image
	formatTerm = "term" // styled terminal text
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	sourceOpts

	output    string // output file path; empty writes text formats to stdout
	format    string // one of the format constants above
	baseURL   string // wiki base URL for category links
	namespace string // category namespace, e.g. "Kategorie" on German wikis
	seed      int64  // fixed shuffle seed; negative means shuffle freely
	noCache   bool   // bypass the fragment cache
	counts    bool   // show raw counts in terminal output
	width     int    // wrap width for terminal output
}

// attrNames lists the tag attributes exposed as flags, in help order.
var attrNames = []string{
	cloud.AttrMin,
	cloud.AttrMax,
	cloud.AttrExclude,
	cloud.AttrOnly,
	cloud.AttrMinSize,
	cloud.AttrMaxSize,
	cloud.AttrRefresh,
}

// addAttrFlags registers one flag per tag attribute. The flags are collected
// as raw strings so flag input and wiki tag input go through the same
// parsing and clamping.
func addAttrFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(cloud.AttrMin, "", "minimum page count for a category to appear")
	f.String(cloud.AttrMax, "", "maximum number of categories (0 = unlimited)")
	f.String(cloud.AttrExclude, "", "comma-separated categories to hide")
	f.String(cloud.AttrOnly, "", "comma-separated whitelist of categories")
	f.String(cloud.AttrMinSize, "", "font size of the rarest category (percent)")
	f.String(cloud.AttrMaxSize, "", "font size of the most frequent category (percent)")
	f.String(cloud.AttrRefresh, "", "fragment cache lifetime in seconds (0 = no caching)")
}

// collectAttrs gathers the attribute flags the user actually set.
func collectAttrs(cmd *cobra.Command) map[string]string {
	attrs := make(map[string]string)
	for _, name := range attrNames {
		if cmd.Flags().Changed(name) {
			attrs[name] = cmd.Flags().Lookup(name).Value.String()
		}
	}
	return attrs
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{seed: -1}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a tag cloud from category counts",
		Long: `Render a tag cloud from a counts file or a MongoDB collection.

The html format produces the embeddable fragment a wiki would serve inline.
The dot, svg, and png formats go through Graphviz; term prints a styled
cloud straight to the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.input == "" && opts.mongoURI == "" {
				return fmt.Errorf("either --input or --mongo-uri is required")
			}
			return c.runRender(cmd.Context(), collectAttrs(cmd), &opts)
		},
	}

	addSourceFlags(cmd, &opts.sourceOpts)
	addAttrFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for text formats, cloud.<format> for images)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "output format: html, dot, svg, png, term")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", defaultBaseURL, "wiki base URL for category links")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "category namespace (default \"Category\")")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "fixed shuffle seed for reproducible output (negative = random)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the fragment cache")
	cmd.Flags().BoolVar(&opts.counts, "counts", false, "show raw page counts (term format)")
	cmd.Flags().IntVar(&opts.width, "width", term.DefaultWidth, "wrap width in cells (term format)")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	formatHTML: true,
	formatDOT:  true,
	formatSVG:  true,
	formatPNG:  true,
	formatTerm: true,
}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'html', 'dot', 'svg', 'png', or 'term')", f)
	}
	return nil
}

// runRender fetches, shapes, and renders the cloud in the requested format.
func (c *CLI) runRender(ctx context.Context, attrs map[string]string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	if len(attrs) > 0 {
		logger.Debugf("Attributes: %s", joinAttrs(attrs))
	}

	src, closeSource, err := c.openSource(ctx, opts.sourceOpts)
	if err != nil {
		return err
	}
	defer closeSource()

	// Only the HTML fragment is cacheable; the other formats need the
	// entries themselves, which a cache hit would not carry.
	fragmentCache, err := newCache(opts.noCache || opts.format != formatHTML)
	if err != nil {
		return err
	}
	defer fragmentCache.Close()

	runnerOpts := []pipeline.Option{pipeline.WithSourceID(opts.sourceID())}
	if opts.seed >= 0 {
		runnerOpts = append(runnerOpts, pipeline.WithSeed(opts.seed))
	}
	runner := pipeline.NewRunner(src, newResolver(opts.baseURL, opts.namespace), fragmentCache, logger, runnerOpts...)

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, attrs)
	if err != nil {
		return err
	}
	if res.Cached {
		prog.done("Served cached fragment")
	} else {
		prog.done(fmt.Sprintf("Rendered %d categories", len(res.Entries)))
	}

	switch opts.format {
	case formatHTML:
		if err := c.writeOutput(opts.output, res.Fragment); err != nil {
			return err
		}
	case formatDOT:
		dotSrc := dot.ToDOT(res.Entries, dot.Options{Resolver: newResolver(opts.baseURL, opts.namespace)})
		if err := c.writeOutput(opts.output, []byte(dotSrc)); err != nil {
			return err
		}
	case formatSVG, formatPNG:
		if err := c.renderImage(opts, res.Entries); err != nil {
			return err
		}
	case formatTerm:
		fmt.Println(term.Render(res.Entries, res.Config, term.Options{Width: opts.width, ShowCounts: opts.counts}))
	}

	if len(res.Entries) == 0 && !res.Cached {
		printWarning("No categories matched the filters")
	}
	printStats(len(res.Entries), res.Cached)
	if opts.format == formatHTML && opts.input != "" {
		printNextStep("Preview in the terminal", fmt.Sprintf("%s preview -i %s", appName, opts.input))
	}
	return nil
}

// renderImage rasterizes the entries through Graphviz.
func (c *CLI) renderImage(opts *renderOpts, entries []cloud.Entry) error {
	dotSrc := dot.ToDOT(entries, dot.Options{Resolver: newResolver(opts.baseURL, opts.namespace)})

	var data []byte
	var err error
	switch opts.format {
	case formatSVG:
		data, err = dot.RenderSVG(dotSrc)
	case formatPNG:
		data, err = dot.RenderPNG(dotSrc)
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = "cloud." + opts.format
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	printSuccess("Generated %s", filepath.Base(path))
	printFile(path)
	return nil
}

// writeOutput writes data to the output path, or stdout when it is empty.
func (c *CLI) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// joinAttrs formats an attribute map the way it would appear in a wiki tag.
func joinAttrs(attrs map[string]string) string {
	parts := make([]string, 0, len(attrs))
	for _, name := range attrNames {
		if v, ok := attrs[name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%q", name, v))
		}
	}
	return strings.Join(parts, " ")
}
