package mutate

import "math/rand"

// Confusions is an immutable catalogue of OCR-confusable rune classes.
//
// The forward table maps a rune to the alternatives a scanner plausibly
// misreads it as; the reverse index answers the opposite question and is
// what the relocator's confusion-aware search stage consumes. Build once
// (DefaultConfusions or NewConfusions) and share by reference; no method
// mutates the receiver.
type Confusions struct {
	forward map[rune][]rune
	reverse map[rune][]rune
}

// defaultForward is the Spanish/Chilean OCR confusion profile: accented
// vowels, ñ/ç, digit/letter look-alikes and punctuation drift as seen in
// scanned Chilean documents.
var defaultForward = map[rune][]rune{
	// Lowercase letters.
	'a': {'á', 'à', 'â', 'ä', '@', '4'},
	'e': {'é', 'è', 'ê', 'ë', '3'},
	'i': {'í', 'ì', 'î', 'ï', '1', 'l', '!'},
	'o': {'ó', 'ò', 'ô', 'ö', '0', '°'},
	'u': {'ú', 'ù', 'û', 'ü'},
	'n': {'ñ'},
	'c': {'ç', '¢'},
	's': {'5', '$'},
	'l': {'1', 'I', '!', 'i'},
	'b': {'6', '8'},
	'g': {'9', 'q'},
	'q': {'9', 'g'},
	'z': {'2'},
	't': {'7', '+'},

	// Accented forms fold back to their base letter.
	'á': {'a'}, 'à': {'a'}, 'ä': {'a'},
	'é': {'e'}, 'è': {'e'}, 'ë': {'e'},
	'í': {'i'}, 'ì': {'i'}, 'ï': {'i'},
	'ó': {'o'}, 'ò': {'o'}, 'ö': {'o'},
	'ú': {'u'}, 'ù': {'u'}, 'ü': {'u'},
	'ñ': {'n'},

	// Uppercase letters.
	'A': {'Á', '4', '@'},
	'B': {'8', '6'},
	'E': {'É', '3'},
	'G': {'6', 'C'},
	'I': {'1', '|', 'l', '!'},
	'Í': {'I'},
	'Á': {'A'}, 'É': {'E'}, 'Ó': {'O'}, 'Ú': {'U'}, 'Ñ': {'N'},
	'O': {'0', 'Ó', '°'},
	'S': {'5', '$'},
	'T': {'7', '+'},
	'U': {'Ú', 'V'},
	'Z': {'2'},

	// Digits.
	'0': {'O', 'o', '°'},
	'1': {'l', 'I', '|', '!', 'i'},
	'2': {'Z', 'z'},
	'3': {'E', 'e'},
	'4': {'A', 'a'},
	'5': {'S', 's', '$'},
	'6': {'G', 'b'},
	'7': {'T', 't', '+'},
	'8': {'B', '&'},
	'9': {'g', 'q'},

	// Punctuation drift.
	'.': {',', ':', ';', '·'},
	',': {'.', ';', ':'},
	':': {';', '.', '|'},
	';': {':', ','},
	'-': {'_', '~', '–', '='},
	'_': {'-', '~'},
	'/': {'\\', '|', '1'},
	'+': {'t', 'T'},
}

// defaultConfusions is built once at init; DefaultConfusions hands out
// the shared instance.
var defaultConfusions = NewConfusions(defaultForward)

// DefaultConfusions returns the shared Spanish/Chilean confusion table.
// Complexity: O(1).
func DefaultConfusions() *Confusions { return defaultConfusions }

// NewConfusions builds an immutable Confusions from a forward table.
// The input map is copied; callers may reuse or discard it afterwards.
// Complexity: O(total alternatives).
func NewConfusions(forward map[rune][]rune) *Confusions {
	c := &Confusions{
		forward: make(map[rune][]rune, len(forward)),
		reverse: make(map[rune][]rune, len(forward)),
	}
	for r, alts := range forward {
		cp := make([]rune, len(alts))
		copy(cp, alts)
		c.forward[r] = cp
		for _, a := range alts {
			c.reverse[a] = append(c.reverse[a], r)
		}
	}
	return c
}

// Alternatives returns the confusable replacements for r, or nil when r
// has no entry. The returned slice must not be modified.
// Complexity: O(1).
func (c *Confusions) Alternatives(r rune) []rune { return c.forward[r] }

// Pick draws a uniformly random confusable replacement for r.
// The second result is false when r has no confusion class.
// Complexity: O(1).
func (c *Confusions) Pick(r rune, rng *rand.Rand) (rune, bool) {
	alts := c.forward[r]
	if len(alts) == 0 {
		return 0, false
	}
	return alts[rng.Intn(len(alts))], true
}

// Confusable reports whether b is a plausible scan of a: either equal,
// listed as a forward alternative of a, or a known source of a (so the
// relation is usable in both directions by the relocator).
// Complexity: O(class size).
func (c *Confusions) Confusable(a, b rune) bool {
	if a == b {
		return true
	}
	for _, r := range c.forward[a] {
		if r == b {
			return true
		}
	}
	for _, r := range c.reverse[a] {
		if r == b {
			return true
		}
	}
	return false
}
