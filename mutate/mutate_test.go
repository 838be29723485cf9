package mutate_test

import (
	"math/rand"
	"testing"

	"github.com/andesnlp/garbler/mutate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG() *rand.Rand { return rand.New(rand.NewSource(42)) }

// TestKind_RoundTrip verifies String/ParseKind agree for every kind.
func TestKind_RoundTrip(t *testing.T) {
	for _, k := range mutate.Kinds() {
		parsed, ok := mutate.ParseKind(k.String())
		require.True(t, ok, "kind %q must parse", k)
		assert.Equal(t, k, parsed)
	}

	_, ok := mutate.ParseKind("nonsense")
	assert.False(t, ok)
}

// TestEdit_Delta verifies the signed length delta of edits.
func TestEdit_Delta(t *testing.T) {
	assert.Equal(t, 0, mutate.Edit{DelLen: 1, Insert: "x"}.Delta(), "substitution is length-neutral")
	assert.Equal(t, -1, mutate.Edit{DelLen: 1}.Delta(), "deletion shrinks by one")
	assert.Equal(t, +1, mutate.Edit{Insert: " "}.Delta(), "insertion grows by one")
	assert.Equal(t, 0, mutate.Edit{DelLen: 2, Insert: "ba"}.Delta(), "transposition is length-neutral")
	assert.Equal(t, 0, mutate.Edit{DelLen: 1, Insert: "ñ"}.Delta(), "delta counts runes, not bytes")
}

// TestConfusions_Symmetry verifies the reverse index makes Confusable
// usable in both directions.
func TestConfusions_Symmetry(t *testing.T) {
	c := mutate.DefaultConfusions()

	assert.True(t, c.Confusable('0', 'O'), "forward direction")
	assert.True(t, c.Confusable('O', '0'), "forward direction")
	assert.True(t, c.Confusable('l', '1'))
	assert.True(t, c.Confusable('1', 'l'), "reverse direction")
	assert.True(t, c.Confusable('x', 'x'), "identity always confusable")
	assert.False(t, c.Confusable('x', 'y'))
}

// TestConfusions_Pick verifies Pick draws only listed alternatives.
func TestConfusions_Pick(t *testing.T) {
	c := mutate.DefaultConfusions()
	rng := newRNG()

	for i := 0; i < 50; i++ {
		alt, ok := c.Pick('0', rng)
		require.True(t, ok)
		assert.True(t, c.Confusable('0', alt), "picked %q must be in the class of '0'", alt)
	}

	_, ok := c.Pick('€', rng)
	assert.False(t, ok, "rune without a class must refuse")
}

// TestPropose_Substitute verifies substitution is one-for-one.
func TestPropose_Substitute(t *testing.T) {
	lib := mutate.NewLibrary(nil)
	buf := []rune("RUT 12.345.678-9")

	e, ok := lib.Propose(mutate.Substitute, buf, 4, newRNG())
	require.True(t, ok)
	assert.Equal(t, 1, e.DelLen)
	assert.Equal(t, 0, e.Delta(), "substitution must not move offsets")
	assert.True(t, lib.Confusions().Confusable('1', []rune(e.Insert)[0]))
}

// TestPropose_TransposeRefusals verifies transpose refuses at the last
// index and across spaces.
func TestPropose_TransposeRefusals(t *testing.T) {
	lib := mutate.NewLibrary(nil)
	buf := []rune("ab cd")

	_, ok := lib.Propose(mutate.Transpose, buf, len(buf)-1, newRNG())
	assert.False(t, ok, "no rune after the last index")

	_, ok = lib.Propose(mutate.Transpose, buf, 1, newRNG())
	assert.False(t, ok, "transposing across a space is merging in disguise")

	e, ok := lib.Propose(mutate.Transpose, buf, 3, newRNG())
	require.True(t, ok)
	assert.Equal(t, "dc", e.Insert)
	assert.Equal(t, 2, e.DelLen)
}

// TestPropose_FragmentOnlyInsideWords verifies fragmentation placement.
func TestPropose_FragmentOnlyInsideWords(t *testing.T) {
	lib := mutate.NewLibrary(nil)
	buf := []rune("hola mundo")

	_, ok := lib.Propose(mutate.Fragment, buf, 0, newRNG())
	assert.False(t, ok, "word start is not an interior position")

	_, ok = lib.Propose(mutate.Fragment, buf, 5, newRNG())
	assert.False(t, ok, "position after a space is a word start")

	e, ok := lib.Propose(mutate.Fragment, buf, 2, newRNG())
	require.True(t, ok)
	assert.Equal(t, +1, e.Delta())
}

// TestPropose_MergeNeedsInterWordSpace verifies merge preconditions.
func TestPropose_MergeNeedsInterWordSpace(t *testing.T) {
	lib := mutate.NewLibrary(nil)
	buf := []rune("hola mundo")

	e, ok := lib.Propose(mutate.Merge, buf, 4, newRNG())
	require.True(t, ok)
	assert.Equal(t, mutate.Edit{Pos: 4, Kind: mutate.Merge, DelLen: 1}, e)

	_, ok = lib.Propose(mutate.Merge, buf, 3, newRNG())
	assert.False(t, ok, "merge applies only at a space")
}

// TestPropose_SymbolTargetsStructuralSet verifies Symbol only fires on
// the structural characters.
func TestPropose_SymbolTargetsStructuralSet(t *testing.T) {
	lib := mutate.NewLibrary(nil)
	buf := []rune("a@b.c-d+e")

	for _, pos := range []int{1, 3, 5, 7} {
		e, ok := lib.Propose(mutate.Symbol, buf, pos, newRNG())
		require.True(t, ok, "structural symbol at %d", pos)
		assert.NotEqual(t, string(buf[pos]), e.Insert)
	}
	for _, pos := range []int{0, 2, 4} {
		_, ok := lib.Propose(mutate.Symbol, buf, pos, newRNG())
		assert.False(t, ok, "letter at %d is not a structural symbol", pos)
	}
}

// TestPropose_OutOfRange verifies positional guards.
func TestPropose_OutOfRange(t *testing.T) {
	lib := mutate.NewLibrary(nil)
	buf := []rune("ab")

	_, ok := lib.Propose(mutate.Delete, buf, -1, newRNG())
	assert.False(t, ok)
	_, ok = lib.Propose(mutate.Delete, buf, 2, newRNG())
	assert.False(t, ok)
}
