// Package mutate is the catalogue of atomic text mutations used to
// simulate document-scanning artifacts (OCR confusions, formatting
// drift, stray symbols).
//
// Every mutation is a pure proposal: given a rune buffer, a position and
// an RNG, it either returns an Edit describing a local change or reports
// that it is not applicable there (e.g., Transpose refuses at the last
// index). Nothing in this package applies edits; the offset-tracking
// corruptor in package corrupt owns application and span bookkeeping.
//
// The OCR confusion tables ship with a Spanish/Chilean default profile
// covering accented letters, digit/letter look-alikes (O↔0, I↔1↔l, S↔5)
// and punctuation drift. Tables are immutable once built; a single
// Confusions value is safely shared by any number of concurrent
// corruption runs.
package mutate
