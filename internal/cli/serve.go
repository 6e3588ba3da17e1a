package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhelmke/wikicloud/internal/config"
	"github.com/mhelmke/wikicloud/internal/server"
	"github.com/mhelmke/wikicloud/pkg/cache"
	"github.com/mhelmke/wikicloud/pkg/pipeline"
	"github.com/mhelmke/wikicloud/pkg/source"
	"github.com/mhelmke/wikicloud/pkg/source/file"
	"github.com/mhelmke/wikicloud/pkg/source/mongodb"
	"github.com/mhelmke/wikicloud/pkg/title"
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP fragment server",
		Long: `Run the HTTP fragment server. GET /cloud takes the tag attributes
as query parameters and responds with the rendered HTML fragment; the
backend, cache, and per-request defaults come from the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", appName+".toml", "server configuration file")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	src, closeSource, err := c.serveSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	fragmentCache, err := c.serveCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer fragmentCache.Close()

	resolver := title.NewWikiResolver(cfg.Wiki.BaseURL, cfg.Wiki.Namespace)
	runner := pipeline.NewRunner(src, resolver, fragmentCache, c.Logger,
		pipeline.WithSourceID(cfg.SourceID()))

	c.Logger.Infof("source: %s, cache: %s", cfg.Source.Kind, cfg.Cache.Kind)
	return server.New(runner, c.Logger, cfg.Defaults).Serve(ctx, cfg.Listen)
}

// serveSource opens the configured category-count backend.
func (c *CLI) serveSource(ctx context.Context, cfg *config.Config) (source.Source, func(), error) {
	switch cfg.Source.Kind {
	case config.SourceMongoDB:
		src, closer, err := mongodb.Connect(ctx, cfg.Source.URI, cfg.Source.Database, cfg.Source.Collection)
		if err != nil {
			return nil, func() {}, err
		}
		return src, func() { _ = closer(context.Background()) }, nil
	default:
		src, err := file.Load(cfg.Source.Path)
		if err != nil {
			return nil, func() {}, err
		}
		return src, func() {}, nil
	}
}

// serveCache opens the configured fragment cache backend.
func (c *CLI) serveCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Kind {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
		}
		return cache.NewFileCache(dir)
	}
}
