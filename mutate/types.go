package mutate

import "fmt"

// Kind enumerates the mutation categories in the catalogue.
type Kind uint8

const (
	// Substitute replaces one rune with a visually confusable one.
	// One-for-one, so the relocator can model it as edit distance 1.
	Substitute Kind = iota

	// Delete removes one rune; subsequent offsets shrink by 1.
	Delete

	// Insert adds one stray rune (duplicated whitespace or a symbol);
	// subsequent offsets grow by 1.
	Insert

	// Transpose swaps two adjacent runes; offsets are unchanged.
	Transpose

	// Fragment inserts a word-boundary rune inside a word.
	Fragment

	// Merge deletes the space between two adjacent words.
	Merge

	// Symbol corrupts one of the structural symbols (@ . - +) that
	// carry format meaning for emails, IDs and phone numbers.
	Symbol
)

// kindNames is indexed by Kind and also drives YAML (de)serialization of
// tolerance profiles in package corrupt.
var kindNames = [...]string{
	Substitute: "substitute",
	Delete:     "delete",
	Insert:     "insert",
	Transpose:  "transpose",
	Fragment:   "fragment",
	Merge:      "merge",
	Symbol:     "symbol",
}

// String returns the lowercase name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a lowercase name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Kinds returns all mutation kinds in declaration order.
func Kinds() []Kind {
	return []Kind{Substitute, Delete, Insert, Transpose, Fragment, Merge, Symbol}
}

// Edit is a single local change expressed against a specific buffer
// version: delete DelLen runes at Pos, then insert Insert there.
type Edit struct {
	// Pos is the rune offset the edit applies at.
	Pos int

	// Kind records which mutation produced the edit.
	Kind Kind

	// DelLen is the number of runes removed at Pos.
	DelLen int

	// Insert is the text placed at Pos after the removal.
	Insert string
}

// Delta returns the signed rune-length change the edit causes for every
// offset at or after Pos+DelLen.
// Complexity: O(len(Insert)).
func (e Edit) Delta() int {
	n := 0
	for range e.Insert {
		n++
	}
	return n - e.DelLen
}

// Class is the position class of a rune relative to a protected span set.
// The corruption policy keys its probabilities on it.
type Class uint8

const (
	// Outside means the position lies in no protected span.
	Outside Class = iota

	// Boundary means the position is the first or last rune of a span.
	Boundary

	// Inside means the position is strictly interior to a span.
	Inside
)

// String returns the lowercase name of c.
func (c Class) String() string {
	switch c {
	case Boundary:
		return "boundary"
	case Inside:
		return "inside"
	default:
		return "outside"
	}
}
