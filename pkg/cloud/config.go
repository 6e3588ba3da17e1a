package cloud

import (
	"strconv"
	"strings"
)

// =============================================================================
// Defaults - Single Source of Truth for CLI, Server, and Pipeline
// =============================================================================

const (
	// DefaultMinCount is the minimum page count for a category to appear.
	DefaultMinCount = 1

	// DefaultMaxResults is the result limit. 0 means unlimited.
	DefaultMaxResults = 0

	// DefaultMinFontPercent is the font size assigned to the least popular
	// displayed category, as a percentage of the base font size.
	DefaultMinFontPercent = 80

	// DefaultMaxFontPercent is the font size assigned to the most popular
	// displayed category.
	DefaultMaxFontPercent = 200

	// DefaultCacheTTLSeconds is the fragment cache expiry hint.
	DefaultCacheTTLSeconds = 3600

	// MinFontFloor is the hard lower bound for font percentages. Values
	// below this render illegibly small, so the parser clamps up to it.
	MinFontFloor = 50
)

// Attribute names accepted by ParseConfig. Unknown attributes are ignored.
const (
	AttrMin     = "min"
	AttrMax     = "max"
	AttrExclude = "exclude"
	AttrOnly    = "only"
	AttrMinSize = "minsize"
	AttrMaxSize = "maxsize"
	AttrRefresh = "refresh"
)

// listSeparator splits the exclude and only attribute values.
const listSeparator = ","

// Config is the validated per-render configuration.
//
// A Config is built once per render call from raw attribute strings via
// [ParseConfig] and is immutable afterwards. Invariants established by the
// parser: MinCount ≥ 1, MaxResults ≥ 0, MinFontPercent ≥ MinFontFloor,
// MaxFontPercent ≥ MinFontPercent, CacheTTLSeconds ≥ 0.
type Config struct {
	MinCount        int // minimum page count for inclusion
	MaxResults      int // result limit after sorting; 0 = unlimited
	MinFontPercent  int // font size of the least popular entry
	MaxFontPercent  int // font size of the most popular entry
	CacheTTLSeconds int // requested fragment cache TTL; 0 = no override

	// Exclude drops categories by normalized name.
	Exclude map[string]bool

	// Only restricts the result to the named categories. An empty set
	// means no restriction. When both are set, Only is applied first and
	// Exclude still removes names afterwards.
	Only map[string]bool
}

// ParseConfig builds a Config from raw tag attributes.
//
// Parsing is permissive: missing or non-numeric values fall back to the
// documented defaults, out-of-range values are clamped, and malformed input
// never fails the render. List attributes are split on commas, trimmed,
// normalized with [Normalize], and empty items dropped.
func ParseConfig(attrs map[string]string) Config {
	cfg := Config{
		MinCount:        parseInt(attrs[AttrMin], DefaultMinCount),
		MaxResults:      parseInt(attrs[AttrMax], DefaultMaxResults),
		MinFontPercent:  parseInt(attrs[AttrMinSize], DefaultMinFontPercent),
		MaxFontPercent:  parseInt(attrs[AttrMaxSize], DefaultMaxFontPercent),
		CacheTTLSeconds: parseInt(attrs[AttrRefresh], DefaultCacheTTLSeconds),
		Exclude:         parseNameSet(attrs[AttrExclude]),
		Only:            parseNameSet(attrs[AttrOnly]),
	}

	if cfg.MinCount < 1 {
		cfg.MinCount = 1
	}
	if cfg.MaxResults < 0 {
		cfg.MaxResults = 0
	}
	if cfg.CacheTTLSeconds < 0 {
		cfg.CacheTTLSeconds = 0
	}
	if cfg.MinFontPercent < MinFontFloor {
		cfg.MinFontPercent = MinFontFloor
	}
	if cfg.MaxFontPercent < cfg.MinFontPercent {
		cfg.MaxFontPercent = cfg.MinFontPercent
	}

	return cfg
}

// parseInt parses s as a base-10 integer, falling back to def when s is
// empty or malformed.
func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// parseNameSet splits a delimited attribute value into a normalized name
// set. Order within the list is irrelevant; membership is all that matters.
func parseNameSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, item := range strings.Split(s, listSeparator) {
		name := Normalize(item)
		if name == "" {
			continue
		}
		set[name] = true
	}
	return set
}
