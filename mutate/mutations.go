package mutate

import (
	"math/rand"
	"unicode"
)

// strayRunes are the characters Insert may drop into the text: a
// duplicated space or the stray symbols flatbed scanners typically add.
var strayRunes = []rune{' ', ' ', '.', ',', '-', '|', '_', '\''}

// fragmentRunes are the boundary characters Fragment may place inside a
// word.
var fragmentRunes = []rune{' ', '-', '_', '.', '|'}

// structuralSymbols is the fixed set Symbol targets: characters that
// carry format meaning for emails, IDs, phones and amounts.
var structuralSymbols = map[rune][]rune{
	'@': {'a', '0', '&', '©'},
	'.': {',', ';', ' '},
	'-': {'_', '~', '='},
	'+': {'t', ' ', '*'},
}

// Library proposes mutations against rune buffers. A Library is
// immutable after construction and shared by concurrent runs.
type Library struct {
	conf *Confusions
}

// NewLibrary builds a Library around the given confusion table.
// A nil conf falls back to DefaultConfusions.
// Complexity: O(1).
func NewLibrary(conf *Confusions) *Library {
	if conf == nil {
		conf = DefaultConfusions()
	}
	return &Library{conf: conf}
}

// Confusions exposes the table the library substitutes from, for use by
// the relocator's confusion-aware search.
func (l *Library) Confusions() *Confusions { return l.conf }

// Propose asks the library for an edit of kind k at position pos of buf.
// It returns ok=false when the kind is not applicable there; that is
// expected, high-frequency control flow, never an error.
//
// Complexity: O(1) per call.
func (l *Library) Propose(k Kind, buf []rune, pos int, rng *rand.Rand) (Edit, bool) {
	if pos < 0 || pos >= len(buf) {
		return Edit{}, false
	}
	switch k {
	case Substitute:
		return l.substitute(buf, pos, rng)
	case Delete:
		return l.delete(buf, pos)
	case Insert:
		return l.insert(buf, pos, rng)
	case Transpose:
		return l.transpose(buf, pos)
	case Fragment:
		return l.fragment(buf, pos, rng)
	case Merge:
		return l.merge(buf, pos)
	case Symbol:
		return l.symbol(buf, pos, rng)
	default:
		return Edit{}, false
	}
}

// substitute swaps one rune for an OCR-confusable one. Refuses runes
// with no confusion class.
func (l *Library) substitute(buf []rune, pos int, rng *rand.Rand) (Edit, bool) {
	alt, ok := l.conf.Pick(buf[pos], rng)
	if !ok {
		return Edit{}, false
	}
	return Edit{Pos: pos, Kind: Substitute, DelLen: 1, Insert: string(alt)}, true
}

// delete removes one rune. Refuses to delete the only rune of the buffer
// so a run can never corrupt its input down to the empty string.
func (l *Library) delete(buf []rune, pos int) (Edit, bool) {
	if len(buf) <= 1 {
		return Edit{}, false
	}
	return Edit{Pos: pos, Kind: Delete, DelLen: 1}, true
}

// insert places one stray rune before pos. Inserting next to a space
// prefers duplicating the space, the most common scanning artifact.
func (l *Library) insert(buf []rune, pos int, rng *rand.Rand) (Edit, bool) {
	r := strayRunes[rng.Intn(len(strayRunes))]
	if buf[pos] == ' ' {
		r = ' '
	}
	return Edit{Pos: pos, Kind: Insert, Insert: string(r)}, true
}

// transpose swaps buf[pos] and buf[pos+1]. Refuses at the last index and
// across a space, which would be word merging in disguise.
func (l *Library) transpose(buf []rune, pos int) (Edit, bool) {
	if pos+1 >= len(buf) {
		return Edit{}, false
	}
	a, b := buf[pos], buf[pos+1]
	if a == b || unicode.IsSpace(a) || unicode.IsSpace(b) {
		return Edit{}, false
	}
	return Edit{Pos: pos, Kind: Transpose, DelLen: 2, Insert: string([]rune{b, a})}, true
}

// fragment splits a word by inserting a boundary rune. Applicable only
// strictly inside a run of letters or digits.
func (l *Library) fragment(buf []rune, pos int, rng *rand.Rand) (Edit, bool) {
	if pos == 0 || !isWordRune(buf[pos-1]) || !isWordRune(buf[pos]) {
		return Edit{}, false
	}
	r := fragmentRunes[rng.Intn(len(fragmentRunes))]
	return Edit{Pos: pos, Kind: Fragment, Insert: string(r)}, true
}

// merge deletes a single space flanked by word runes, gluing two words.
func (l *Library) merge(buf []rune, pos int) (Edit, bool) {
	if buf[pos] != ' ' {
		return Edit{}, false
	}
	if pos == 0 || pos+1 >= len(buf) {
		return Edit{}, false
	}
	if !isWordRune(buf[pos-1]) || !isWordRune(buf[pos+1]) {
		return Edit{}, false
	}
	return Edit{Pos: pos, Kind: Merge, DelLen: 1}, true
}

// symbol corrupts a structural symbol, replacing it with a look-alike.
func (l *Library) symbol(buf []rune, pos int, rng *rand.Rand) (Edit, bool) {
	alts, ok := structuralSymbols[buf[pos]]
	if !ok {
		return Edit{}, false
	}
	return Edit{Pos: pos, Kind: Symbol, DelLen: 1, Insert: string(alts[rng.Intn(len(alts))])}, true
}

// isWordRune reports whether r belongs to a word body.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
