package corrupt

import "github.com/andesnlp/garbler/mutate"

// TextBuffer is an immutable snapshot of the text under corruption:
// a rune sequence plus a monotonically increasing version identifier.
// Applying an edit yields a new buffer version; the old one stays valid,
// which makes rollback (and retry) trivial. A buffer is owned by the run
// that created it and is never shared across runs.
type TextBuffer struct {
	runes   []rune
	version int
}

// NewTextBuffer wraps text as version 0 of a buffer lineage.
// Complexity: O(n).
func NewTextBuffer(text string) TextBuffer {
	return TextBuffer{runes: []rune(text)}
}

// Len returns the buffer length in runes.
func (b TextBuffer) Len() int { return len(b.runes) }

// Version returns the buffer's position in its lineage.
func (b TextBuffer) Version() int { return b.version }

// String materializes the buffer content.
// Complexity: O(n).
func (b TextBuffer) String() string { return string(b.runes) }

// Runes exposes the underlying rune slice for read-only scanning.
// Callers must not modify it; Apply is the only way to change content.
func (b TextBuffer) Runes() []rune { return b.runes }

// Apply executes one local edit and returns the next buffer version.
// Positions outside the buffer or delete ranges past the end are the
// caller's bug; the mutation library never proposes them.
//
// Complexity: O(n).
func (b TextBuffer) Apply(e mutate.Edit) TextBuffer {
	ins := []rune(e.Insert)
	out := make([]rune, 0, len(b.runes)+len(ins)-e.DelLen)
	out = append(out, b.runes[:e.Pos]...)
	out = append(out, ins...)
	out = append(out, b.runes[e.Pos+e.DelLen:]...)
	return TextBuffer{runes: out, version: b.version + 1}
}
