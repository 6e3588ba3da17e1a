package cloud

import "math"

// FontSize maps a page count to a font-size percentage by linear
// interpolation between cfg.MinFontPercent and cfg.MaxFontPercent.
//
// minInSet and maxInSet are the extreme counts of the displayed set (after
// filtering and limiting), not of the full data source. When all displayed
// entries share the same count the ratio is fixed at 0.5, so every entry
// gets the midpoint size. Rounding is half away from zero; results are
// always within [MinFontPercent, MaxFontPercent] by construction.
func FontSize(count, minInSet, maxInSet int, cfg Config) int {
	ratio := 0.5
	if span := maxInSet - minInSet; span > 0 {
		ratio = float64(count-minInSet) / float64(span)
	}
	size := float64(cfg.MinFontPercent) + float64(cfg.MaxFontPercent-cfg.MinFontPercent)*ratio
	return int(math.Round(size))
}

// Sizes computes the font size for every selected category and returns the
// entries in the same order. The count extremes are taken over the given
// set, so Sizes must run after [Select] and before [Shuffle].
func Sizes(selected []Category, cfg Config) []Entry {
	if len(selected) == 0 {
		return nil
	}

	minInSet, maxInSet := selected[0].Count, selected[0].Count
	for _, c := range selected[1:] {
		if c.Count < minInSet {
			minInSet = c.Count
		}
		if c.Count > maxInSet {
			maxInSet = c.Count
		}
	}

	entries := make([]Entry, len(selected))
	for i, c := range selected {
		entries[i] = Entry{Category: c, FontPercent: FontSize(c.Count, minInSet, maxInSet, cfg)}
	}
	return entries
}
