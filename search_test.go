// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package cpubabel_test

import (
	"fmt"
	"reflect"
	"testing"

	bb "github.com/cpubabel/cpubabel"
)

func corpus(n int) []string {
	seeds := make([]string, n)
	for i := range seeds {
		seeds[i] = fmt.Sprintf("seed_%d", i)
	}
	return seeds
}

func TestRankEmptyQueryNeutrality(t *testing.T) {
	cat := bb.DefaultCatalog()
	seeds := corpus(10)
	got := bb.Rank(cat, seeds, nil, 3)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	for i, m := range got {
		if m.Seed != seeds[i] || m.Distance != 0 {
			t.Errorf("result %d: %+v, want {%s 0}", i, m, seeds[i])
		}
	}
}

func TestRankStability(t *testing.T) {
	cat := bb.DefaultCatalog()
	seeds := corpus(30)
	words := []string{"cisc", "deep_pipeline"}
	first := bb.Rank(cat, seeds, words, len(seeds))
	for i := 0; i < 20; i++ {
		if got := bb.Rank(cat, seeds, words, len(seeds)); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged:\n got %v\nwant %v", i, got, first)
		}
	}
}

// The documented scenario: "compact fast_memory" over ten seeds with
// the default limit. Distances follow from the pinned draw protocol
// vectors, ties resolve in input order.
func TestRankScenario(t *testing.T) {
	cat := bb.DefaultCatalog()
	got := bb.Rank(cat, corpus(10), []string{"compact", "fast_memory"}, 0)
	want := []bb.Match{
		{Seed: "seed_3", Distance: 1},
		{Seed: "seed_0", Distance: 2},
		{Seed: "seed_2", Distance: 2},
		{Seed: "seed_4", Distance: 2},
		{Seed: "seed_5", Distance: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestRankLimits(t *testing.T) {
	cat := bb.DefaultCatalog()
	seeds := corpus(4)
	if got := bb.Rank(cat, seeds, []string{"cisc"}, 100); len(got) != 4 {
		t.Errorf("oversized limit: %d results, want 4", len(got))
	}
	if got := bb.Rank(cat, corpus(10), []string{"cisc"}, -1); len(got) != bb.DefaultLimit {
		t.Errorf("negative limit: %d results, want %d", len(got), bb.DefaultLimit)
	}
	if got := bb.Rank(cat, nil, []string{"cisc"}, 5); len(got) != 0 {
		t.Errorf("empty corpus: %d results, want 0", len(got))
	}
}

func TestRankUnknownWordsAreNeutral(t *testing.T) {
	cat := bb.DefaultCatalog()
	seeds := corpus(6)
	got := bb.Rank(cat, seeds, []string{"no_such_word"}, len(seeds))
	for i, m := range got {
		if m.Seed != seeds[i] || m.Distance != 0 {
			t.Errorf("result %d: %+v, want {%s 0}", i, m, seeds[i])
		}
	}
}
