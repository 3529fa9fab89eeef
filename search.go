// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package cpubabel

import (
	"runtime"
	"sort"
	"sync"
)

// DefaultLimit is the result limit used by Rank when limit <= 0.
const DefaultLimit = 5

// A Match pairs a candidate seed with its mismatch distance to the
// query.
//
type Match struct {
	Seed     string
	Distance int
}

// Rank scores each candidate seed against the query words and returns
// the closest matches in ascending distance order, truncated to
// limit (DefaultLimit if limit <= 0).
//
// The words are resolved through cat's lexicon into a target
// constraint (later words win on field conflicts, unknown words are
// ignored) and every candidate's design point is derived with the
// same sampler as generation, never an approximation. Ties are broken
// by candidate input order, so a fixed candidate list and query
// always produce the identical sequence. An empty query puts every
// candidate at distance 0 in input order: no preference, not perfect
// match.
//
// Candidates are evaluated concurrently on a fixed pool of workers;
// results are collected and sorted centrally so that scheduling never
// leaks into the ordering.
//
func Rank(cat *Catalog, candidates []string, words []string, limit int) []Match {
	if limit <= 0 {
		limit = DefaultLimit
	}
	target := cat.Lexicon.Resolve(words)
	s := NewSampler(cat)

	matches := make([]Match, len(candidates))

	workers := runtime.GOMAXPROCS(-1)
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers > 1 {
		var wg sync.WaitGroup
		idx := make(chan int)
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range idx {
					matches[i] = Match{candidates[i], target.Distance(s.Sample(candidates[i]))}
				}
			}()
		}
		for i := range candidates {
			idx <- i
		}
		close(idx)
		wg.Wait()
	} else {
		for i, c := range candidates {
			matches[i] = Match{c, target.Distance(s.Sample(c))}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
