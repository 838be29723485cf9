// Package span models labeled character intervals over a text buffer.
//
// A Span is the canonical representation of a named-entity annotation:
// a half-open rune interval [Start, End) carrying an EntityType label and
// a back-reference to the verbatim source text it covered when created.
//
// Spans are small value types. All operations return new spans; nothing
// here mutates its receiver. Operations that would produce a degenerate
// or out-of-bounds span fail with ErrInvalidSpan rather than clamping,
// because a silently clamped span may relabel a different substring as
// the entity.
//
// The final span set accepted by a corruption run must be pairwise
// non-overlapping; ValidateSet enforces that invariant.
//
// Errors:
//
//	ErrInvalidSpan - span bounds are degenerate or outside the buffer.
//	ErrOverlap     - two spans in a set intersect.
package span
