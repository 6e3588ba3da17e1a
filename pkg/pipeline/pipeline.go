// Package pipeline provides the complete tag-cloud render call.
//
// This package ties the pieces together so the CLI and the server behave
// identically: parse attributes, consult the fragment cache, fetch counts,
// select and size, shuffle, render HTML, and store the fragment back with
// the requested TTL.
//
// # Usage
//
//	runner := pipeline.NewRunner(src, resolver, cache, logger)
//	result, err := runner.Execute(ctx, map[string]string{
//	    "min":     "2",
//	    "exclude": "Stubs",
//	})
//	if err != nil {
//	    return err
//	}
//	w.Write(result.Fragment)
//
// One Execute call is one render: no internal parallelism, no background
// work, no shared mutable state across calls. A data source failure aborts
// the render and propagates to the caller; there is no retry here.
package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhelmke/wikicloud/pkg/cache"
	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/render/html"
	"github.com/mhelmke/wikicloud/pkg/source"
	"github.com/mhelmke/wikicloud/pkg/title"
)

// Result is the outcome of one render call.
type Result struct {
	// Fragment is the rendered HTML, either freshly built or cached.
	Fragment []byte

	// Entries are the sized, shuffled entries behind a fresh Fragment.
	// Nil when the fragment came from the cache.
	Entries []cloud.Entry

	// Config is the parsed render configuration.
	Config cloud.Config

	// Cached reports whether Fragment was served from the cache.
	Cached bool

	// TTL is the requested fragment lifetime, for the host's own
	// response-cache headers. Zero means no override was requested.
	TTL time.Duration
}

// Runner executes renders against a fixed source, resolver, and cache.
type Runner struct {
	source   source.Source
	resolver title.Resolver
	cache    cache.Cache
	logger   *log.Logger
	sourceID string
	seed     *int64
	htmlOpts []html.Option
}

// Option configures a Runner.
type Option func(*Runner)

// WithSourceID sets the source identity mixed into fragment cache keys.
// Deployments sharing one cache across several wikis must set distinct IDs.
func WithSourceID(id string) Option {
	return func(r *Runner) { r.sourceID = id }
}

// WithSeed fixes the shuffle seed, making renders reproducible. Intended
// for tests and previews; production renders should reshuffle freely.
func WithSeed(seed int64) Option {
	return func(r *Runner) { r.seed = &seed }
}

// WithHTMLOptions forwards options to the HTML fragment renderer.
func WithHTMLOptions(opts ...html.Option) Option {
	return func(r *Runner) { r.htmlOpts = opts }
}

// NewRunner creates a render runner. A nil cache disables caching and a
// nil logger falls back to the default logger.
func NewRunner(src source.Source, resolver title.Resolver, c cache.Cache, logger *log.Logger, opts ...Option) *Runner {
	r := &Runner{
		source:   src,
		resolver: resolver,
		cache:    c,
		logger:   logger,
	}
	if r.cache == nil {
		r.cache = cache.NewNullCache()
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute performs one full render from raw tag attributes.
func (r *Runner) Execute(ctx context.Context, attrs map[string]string) (*Result, error) {
	cfg := cloud.ParseConfig(attrs)
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	key := cache.FragmentKey(r.sourceID, cfg)

	if data, hit, err := r.cache.Get(ctx, key); err != nil {
		// A broken cache must not break the render.
		r.logger.Warnf("fragment cache get failed: %v", err)
	} else if hit {
		r.logger.Debugf("fragment cache hit (%d bytes)", len(data))
		return &Result{Fragment: data, Config: cfg, Cached: true, TTL: ttl}, nil
	}

	start := time.Now()
	rows, err := r.source.Categories(ctx, r.query(cfg))
	if err != nil {
		return nil, err
	}
	r.logger.Debugf("fetched %d categories (%s)", len(rows), time.Since(start).Round(time.Millisecond))

	entries := cloud.Sizes(cloud.Select(rows, cfg), cfg)
	cloud.Shuffle(entries, r.rng())

	fragment := html.Render(entries, r.resolver, r.htmlOpts...)
	r.logger.Infof("rendered %d of %d categories", len(entries), len(rows))

	// TTL 0 means the tag requested no cache override: skip storing.
	if ttl > 0 {
		if err := r.cache.Set(ctx, key, fragment, ttl); err != nil {
			r.logger.Warnf("fragment cache set failed: %v", err)
		}
	}

	return &Result{Fragment: fragment, Entries: entries, Config: cfg, TTL: ttl}, nil
}

// query builds the push-down hints for a fetch.
//
// The limit hint is only passed when no exclusions exist: a source trims
// before the in-process exclude filter runs, so pushing the limit down
// could drop survivors that belong in the final set.
func (r *Runner) query(cfg cloud.Config) source.Query {
	q := source.Query{
		MinCount: cfg.MinCount,
		Only:     cfg.Only,
	}
	if len(cfg.Exclude) == 0 {
		q.Limit = cfg.MaxResults
	}
	return q
}

func (r *Runner) rng() *rand.Rand {
	if r.seed == nil {
		return nil
	}
	return rand.New(rand.NewSource(*r.seed))
}
