package cloud

import "sort"

// Select applies the configured filters to a fetched category list and
// returns the entries that qualify for display.
//
// Filtering order:
//
//  1. Drop entries with Count < cfg.MinCount.
//  2. If cfg.Only is non-empty, keep only names in that set.
//  3. Drop names in cfg.Exclude. Exclude runs after Only so an explicit
//     whitelist never resurrects an excluded category.
//  4. Sort by count descending. Ties keep source order.
//  5. If cfg.MaxResults > 0, truncate to the first MaxResults entries,
//     keeping the highest counts.
//
// Sources may push some of these filters into their queries as an
// optimization; Select re-applies all of them, so results are identical
// either way. An empty result is a normal outcome, not an error.
func Select(categories []Category, cfg Config) []Category {
	selected := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Count < cfg.MinCount {
			continue
		}
		if len(cfg.Only) > 0 && !cfg.Only[c.Name] {
			continue
		}
		if cfg.Exclude[c.Name] {
			continue
		}
		selected = append(selected, c)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Count > selected[j].Count
	})

	if cfg.MaxResults > 0 && len(selected) > cfg.MaxResults {
		selected = selected[:cfg.MaxResults]
	}
	return selected
}
