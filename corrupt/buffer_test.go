package corrupt

import (
	"testing"

	"github.com/andesnlp/garbler/mutate"
	"github.com/stretchr/testify/assert"
)

// TestTextBuffer_ApplyVersions verifies edits produce new versions and
// never disturb earlier ones.
func TestTextBuffer_ApplyVersions(t *testing.T) {
	b0 := NewTextBuffer("maria soto")
	assert.Equal(t, 0, b0.Version())
	assert.Equal(t, 10, b0.Len())

	b1 := b0.Apply(mutate.Edit{Pos: 2, Kind: mutate.Substitute, DelLen: 1, Insert: "r1"})
	assert.Equal(t, "marr1a soto", b1.String())
	assert.Equal(t, 1, b1.Version())
	assert.Equal(t, "maria soto", b0.String(), "previous version untouched")

	b2 := b1.Apply(mutate.Edit{Pos: 0, Kind: mutate.Delete, DelLen: 1})
	assert.Equal(t, "arr1a soto", b2.String())
	assert.Equal(t, 2, b2.Version())
}

// TestTextBuffer_Unicode verifies positions count runes, not bytes.
func TestTextBuffer_Unicode(t *testing.T) {
	b := NewTextBuffer("PEÑA")
	assert.Equal(t, 4, b.Len())

	out := b.Apply(mutate.Edit{Pos: 2, Kind: mutate.Substitute, DelLen: 1, Insert: "N"})
	assert.Equal(t, "PENA", out.String())
}

// TestTextBuffer_InsertAtEnd verifies a pure insertion at Len() appends.
func TestTextBuffer_InsertAtEnd(t *testing.T) {
	b := NewTextBuffer("ab")
	out := b.Apply(mutate.Edit{Pos: 2, Kind: mutate.Insert, Insert: "c"})
	assert.Equal(t, "abc", out.String())
}
