// Package config loads the wikicloud server configuration from TOML.
//
// A minimal file looks like:
//
//	listen = ":8080"
//
//	[wiki]
//	base_url = "https://wiki.example.org"
//
//	[source]
//	kind = "file"
//	path = "/var/lib/wikicloud/counts.json"
//
//	[cache]
//	kind = "redis"
//	addr = "localhost:6379"
//
// Unset values fall back to documented defaults; the only hard requirement
// is the wiki base URL, since category links cannot be built without it.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mhelmke/wikicloud/pkg/errors"
)

// Source kinds.
const (
	SourceFile    = "file"
	SourceMongoDB = "mongodb"
)

// Cache kinds.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// DefaultListen is the default server listen address.
const DefaultListen = ":8080"

// Config is the full server configuration.
type Config struct {
	Listen string `toml:"listen"`

	Wiki   Wiki   `toml:"wiki"`
	Source Source `toml:"source"`
	Cache  Cache  `toml:"cache"`

	// Defaults are attribute values applied when a request omits them,
	// e.g. defaults = { min = "2", exclude = "Stubs" }.
	Defaults map[string]string `toml:"defaults"`
}

// Wiki locates the host wiki for link resolution.
type Wiki struct {
	BaseURL   string `toml:"base_url"`
	Namespace string `toml:"namespace"` // empty = "Category"
}

// Source selects and configures the category-count backend.
type Source struct {
	Kind string `toml:"kind"` // "file" or "mongodb"

	// File source
	Path string `toml:"path"`

	// MongoDB source
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Cache selects and configures the fragment cache backend.
type Cache struct {
	Kind string `toml:"kind"` // "file", "redis", or "none"

	// File cache
	Dir string `toml:"dir"` // empty = XDG cache dir

	// Redis cache
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Load reads and validates a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{Listen: DefaultListen}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements and fills kind defaults.
func (c *Config) Validate() error {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Wiki.BaseURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "wiki.base_url is required")
	}

	switch c.Source.Kind {
	case SourceFile, "":
		c.Source.Kind = SourceFile
		if c.Source.Path == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "source.path is required for the file source")
		}
	case SourceMongoDB:
		if c.Source.URI == "" || c.Source.Database == "" || c.Source.Collection == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "source.uri, source.database, and source.collection are required for the mongodb source")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown source.kind %q", c.Source.Kind)
	}

	switch c.Cache.Kind {
	case CacheFile, CacheNone, "":
		if c.Cache.Kind == "" {
			c.Cache.Kind = CacheFile
		}
	case CacheRedis:
		if c.Cache.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.addr is required for the redis cache")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache.kind %q", c.Cache.Kind)
	}

	return nil
}

// SourceID returns the cache-key identity of the configured source.
func (c *Config) SourceID() string {
	if c.Source.Kind == SourceMongoDB {
		return SourceMongoDB + ":" + c.Source.URI + "/" + c.Source.Database + "." + c.Source.Collection
	}
	return SourceFile + ":" + c.Source.Path
}
