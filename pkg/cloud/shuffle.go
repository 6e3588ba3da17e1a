package cloud

import "math/rand"

// Shuffle permutes entries in place with uniform probability over all
// orderings (Fisher-Yates). The randomness source is injectable so callers
// can seed it for reproducible output; a nil rng uses the shared global
// source.
//
// Shuffling happens on every render. Consecutive renders of the same data
// may therefore produce different arrangements; the fragment cache is the
// only mechanism limiting how often viewers see a reshuffle.
func Shuffle(entries []Entry, rng *rand.Rand) {
	swap := func(i, j int) { entries[i], entries[j] = entries[j], entries[i] }
	if rng == nil {
		rand.Shuffle(len(entries), swap)
		return
	}
	rng.Shuffle(len(entries), swap)
}
