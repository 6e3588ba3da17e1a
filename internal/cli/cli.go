// Package cli implements the wikicloud command-line interface.
//
// This package provides commands for rendering wiki category tag clouds
// from a counts file or a MongoDB collection, previewing them in the
// terminal, running the HTTP fragment server, and managing the fragment
// cache. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a tag cloud as HTML, DOT, SVG, PNG, or styled text
//   - preview: Interactive terminal preview with reshuffling
//   - serve: Run the HTTP fragment server
//   - cache: Manage the fragment cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhelmke/wikicloud/pkg/buildinfo"
	"github.com/mhelmke/wikicloud/pkg/cache"
	"github.com/mhelmke/wikicloud/pkg/source"
	"github.com/mhelmke/wikicloud/pkg/source/file"
	"github.com/mhelmke/wikicloud/pkg/source/mongodb"
	"github.com/mhelmke/wikicloud/pkg/title"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "wikicloud"

	// defaultBaseURL is the wiki used for category links when none is given.
	defaultBaseURL = "https://en.wikipedia.org"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Wikicloud renders wiki category tag clouds",
		Long:         `Wikicloud builds weighted tag clouds from wiki category page counts: filter, sort, shuffle, and scale categories into an HTML fragment, an image, or a terminal view.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Source Factory
// =============================================================================

// sourceOpts holds the flags selecting the category-count backend.
type sourceOpts struct {
	input     string // counts file path
	mongoURI  string // MongoDB connection string
	mongoDB   string // MongoDB database name
	mongoColl string // MongoDB collection name
}

// addSourceFlags registers the backend selection flags on cmd.
func addSourceFlags(cmd *cobra.Command, opts *sourceOpts) {
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "counts file (JSON array of {name, count})")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection string")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", "", "MongoDB database name")
	cmd.Flags().StringVar(&opts.mongoColl, "mongo-collection", "", "MongoDB collection name")
}

// openSource builds a Source from the flags. The returned closer releases
// backend connections and is safe to call on every path.
func (c *CLI) openSource(ctx context.Context, opts sourceOpts) (source.Source, func(), error) {
	if opts.mongoURI != "" {
		sp := newSpinnerWithContext(ctx, "Connecting to MongoDB...")
		sp.Start()
		src, closer, err := mongodb.Connect(ctx, opts.mongoURI, opts.mongoDB, opts.mongoColl)
		if err != nil {
			sp.StopWithError("MongoDB connection failed")
			return nil, func() {}, err
		}
		sp.Stop()
		return src, func() { _ = closer(context.Background()) }, nil
	}

	src, err := file.Load(opts.input)
	if err != nil {
		return nil, func() {}, err
	}
	return src, func() {}, nil
}

// sourceID returns the cache-key identity for the selected backend.
func (o sourceOpts) sourceID() string {
	if o.mongoURI != "" {
		return "mongodb:" + o.mongoURI + "/" + o.mongoDB + "." + o.mongoColl
	}
	return "file:" + o.input
}

// newResolver builds the category link resolver from the wiki flags.
func newResolver(baseURL, namespace string) title.Resolver {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return title.NewWikiResolver(baseURL, namespace)
}

// =============================================================================
// Cache Factory
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/wikicloud/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
