package cloud

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func sizedFixture(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{Category: Category{Name: string(rune('A' + i)), Count: i + 1}, FontPercent: 100}
	}
	return entries
}

func TestShufflePreservesMultiset(t *testing.T) {
	entries := sizedFixture(12)
	orig := append([]Entry(nil), entries...)

	Shuffle(entries, rand.New(rand.NewSource(7)))

	sortByName := func(s []Entry) {
		sort.Slice(s, func(i, j int) bool { return s[i].Name < s[j].Name })
	}
	shuffled := append([]Entry(nil), entries...)
	sortByName(shuffled)
	sortByName(orig)
	if !reflect.DeepEqual(shuffled, orig) {
		t.Errorf("shuffle changed the entry multiset")
	}
}

func TestShuffleSeededIsReproducible(t *testing.T) {
	a := sizedFixture(10)
	b := sizedFixture(10)

	Shuffle(a, rand.New(rand.NewSource(42)))
	Shuffle(b, rand.New(rand.NewSource(42)))

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed should produce the same permutation")
	}
}

func TestShuffleUniformity(t *testing.T) {
	// With 3 entries there are 6 permutations; over many trials each should
	// appear roughly 1/6 of the time. A loose tolerance keeps this fast and
	// non-flaky while still catching a biased implementation.
	const trials = 6000
	rng := rand.New(rand.NewSource(1))
	counts := make(map[string]int)

	for i := 0; i < trials; i++ {
		entries := sizedFixture(3)
		Shuffle(entries, rng)
		key := ""
		for _, e := range entries {
			key += e.Name
		}
		counts[key]++
	}

	if len(counts) != 6 {
		t.Fatalf("saw %d permutations, want 6: %v", len(counts), counts)
	}
	for perm, n := range counts {
		if n < trials/6-trials/12 || n > trials/6+trials/12 {
			t.Errorf("permutation %s appeared %d times, want ~%d", perm, n, trials/6)
		}
	}
}

func TestShuffleNilRNG(t *testing.T) {
	entries := sizedFixture(5)
	Shuffle(entries, nil) // must not panic
	if len(entries) != 5 {
		t.Errorf("len = %d, want 5", len(entries))
	}
}
