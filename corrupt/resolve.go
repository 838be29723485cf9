package corrupt

import (
	"sort"

	"github.com/andesnlp/garbler/span"
)

// candidate pairs a relocated span with its original appearance order,
// the stable tie-break of the conflict resolver.
type candidate struct {
	s       span.Span
	origIdx int
}

// resolveConflicts arbitrates overlapping or duplicate span candidates:
// sort by length descending, then by original appearance order ascending
// (stable), and greedily accept a span only when its interval does not
// intersect any already-accepted interval. Longest match wins; first
// claim keeps. Deterministic for identical inputs, which reproducible
// fixtures require.
//
// The accepted set is returned sorted by start offset.
//
// Complexity: O(k² ) worst case in the candidate count; span sets per
// example are small.
func resolveConflicts(cands []candidate) []span.Span {
	if len(cands) == 0 {
		return nil
	}

	order := make([]candidate, len(cands))
	copy(order, cands)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].s.Len() != order[j].s.Len() {
			return order[i].s.Len() > order[j].s.Len()
		}
		return order[i].origIdx < order[j].origIdx
	})

	var accepted []span.Span
	for _, c := range order {
		claimed := false
		for _, a := range accepted {
			if span.Intersects(c.s, a) {
				claimed = true
				break
			}
		}
		if !claimed {
			accepted = append(accepted, c.s)
		}
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Start < accepted[j].Start })
	return accepted
}
