// Package source defines the category-count data source boundary.
//
// A [Source] answers one question: which categories exist and how many
// pages does each contain. Implementations live in subpackages:
//
//   - memory: in-process slice, used by tests and the CLI
//   - file: JSON count files on disk
//   - mongodb: a MongoDB collection of (name, count) documents
//
// # Query hints
//
// [Query] carries the filters a source MAY push into its backing store
// (minimum count, whitelist, limit). Push-down is an optimization only:
// pkg/cloud re-applies every filter on the returned rows, so a source that
// ignores the hints entirely is still correct. The exclude set is
// intentionally absent from Query; exclusion always happens in-process
// after the fetch, where normalized-name equality is exact.
package source

import (
	"context"

	"github.com/mhelmke/wikicloud/pkg/cloud"
)

// Query carries optional push-down hints for a category fetch.
type Query struct {
	// MinCount drops rows below this page count. Zero means no threshold.
	MinCount int

	// Only restricts the fetch to the named categories when non-empty.
	Only map[string]bool

	// Limit caps the number of rows returned, keeping the highest counts.
	// Zero means unlimited. Sources applying Limit must sort by count
	// descending first.
	Limit int
}

// Source fetches category page counts.
//
// A failed fetch is fatal to the render: implementations return the error
// as-is (wrapped with code context) and no retry happens at this layer.
// An empty result is a normal outcome, not an error.
type Source interface {
	Categories(ctx context.Context, q Query) ([]cloud.Category, error)
}
