package corrupt

import (
	"testing"

	"github.com/andesnlp/garbler/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveConflicts_LongestWins verifies the longest-match-first rule:
// a city name embedded in an address loses to the address.
func TestResolveConflicts_LongestWins(t *testing.T) {
	address := span.Span{Start: 10, End: 40, Label: span.Address, Source: "Av. Apoquindo 1234, Santiago"}
	city := span.Span{Start: 30, End: 38, Label: span.Address, Source: "Santiago"}

	out := resolveConflicts([]candidate{
		{s: city, origIdx: 0},
		{s: address, origIdx: 1},
	})

	require.Len(t, out, 1)
	assert.Equal(t, address, out[0])
}

// TestResolveConflicts_FirstClaimOnTie verifies the stable tie-break by
// original appearance order for equal lengths.
func TestResolveConflicts_FirstClaimOnTie(t *testing.T) {
	a := span.Span{Start: 5, End: 10, Label: span.SeqNumber, Source: "11111"}
	b := span.Span{Start: 8, End: 13, Label: span.IDNumber, Source: "22222"}

	out := resolveConflicts([]candidate{
		{s: b, origIdx: 1},
		{s: a, origIdx: 0},
	})

	require.Len(t, out, 1)
	assert.Equal(t, a, out[0], "earlier appearance wins the tie")
}

// TestResolveConflicts_DisjointAllAccepted verifies non-conflicting
// candidates all survive and come back sorted by start.
func TestResolveConflicts_DisjointAllAccepted(t *testing.T) {
	a := span.Span{Start: 20, End: 25, Label: span.Amount, Source: "45000"}
	b := span.Span{Start: 0, End: 10, Label: span.CustomerName, Source: "JUAN PÉREZ"}
	c := span.Span{Start: 12, End: 18, Label: span.SeqNumber, Source: "123456"}

	out := resolveConflicts([]candidate{{s: a, origIdx: 0}, {s: b, origIdx: 1}, {s: c, origIdx: 2}})

	require.Len(t, out, 3)
	assert.Equal(t, []span.Span{b, c, a}, out, "output sorted by start offset")
	assert.NoError(t, span.ValidateSet(out, 100))
}

// TestResolveConflicts_Empty verifies the trivial case.
func TestResolveConflicts_Empty(t *testing.T) {
	assert.Nil(t, resolveConflicts(nil))
}

// TestResolveConflicts_Deterministic verifies identical inputs give
// identical outputs regardless of candidate slice order among
// non-tied spans.
func TestResolveConflicts_Deterministic(t *testing.T) {
	cands := []candidate{
		{s: span.Span{Start: 0, End: 8, Label: span.Email, Source: "ab@cd.ef"}, origIdx: 0},
		{s: span.Span{Start: 6, End: 20, Label: span.Address, Source: "f calle grande"}, origIdx: 1},
		{s: span.Span{Start: 25, End: 30, Label: span.Amount, Source: "10000"}, origIdx: 2},
	}

	first := resolveConflicts(cands)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, resolveConflicts(cands))
	}
}
