// Package cache stores rendered tag-cloud fragments.
//
// The renderer never manages cache storage itself; it only advises a
// time-to-live (the tag's refresh attribute, 0 meaning "do not request an
// override"). This package owns storage and expiry behind one interface
// with three backends:
//
//   - [FileCache]: entries as files under the XDG cache directory (CLI)
//   - [RedisCache]: shared cache for multi-instance server deployments
//   - [NullCache]: caching disabled
//
// Keys come from [FragmentKey], a hash over the normalized render config
// and a source identity, so any attribute change produces a fresh entry.
package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mhelmke/wikicloud/pkg/cloud"
)

// Cache stores opaque byte values with per-entry TTL.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. A TTL of 0 stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// FragmentKey derives the cache key for a rendered fragment.
//
// sourceID identifies the data source instance (e.g. a file path or a
// mongo URI + collection) so two wikis sharing one cache never collide.
// The config is canonicalized: set members are sorted, so attribute order
// never affects the key. The TTL is deliberately excluded; changing only
// the refresh attribute should reuse the cached fragment.
func FragmentKey(sourceID string, cfg cloud.Config) string {
	var b strings.Builder
	b.WriteString(sourceID)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(cfg.MinCount))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(cfg.MaxResults))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(cfg.MinFontPercent))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(cfg.MaxFontPercent))
	b.WriteByte('|')
	b.WriteString(strings.Join(sortedNames(cfg.Exclude), ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(sortedNames(cfg.Only), ","))
	return "fragment:" + Hash([]byte(b.String()))
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
