// Package memory provides an in-process category-count source.
//
// It backs tests and the CLI's file-based workflows. Rows are held in a
// plain slice; the push-down hints in [source.Query] are honored to keep
// behavior identical to the database-backed sources.
package memory

import (
	"context"
	"sort"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/source"
)

// Source is an immutable in-memory category list.
type Source struct {
	categories []cloud.Category
}

// New creates a Source over a copy of the given categories.
func New(categories []cloud.Category) *Source {
	return &Source{categories: append([]cloud.Category(nil), categories...)}
}

// Categories returns the stored rows with the query hints applied.
func (s *Source) Categories(ctx context.Context, q source.Query) ([]cloud.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := make([]cloud.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if q.MinCount > 0 && c.Count < q.MinCount {
			continue
		}
		if len(q.Only) > 0 && !q.Only[c.Name] {
			continue
		}
		rows = append(rows, c)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

// Ensure Source implements source.Source.
var _ source.Source = (*Source)(nil)
