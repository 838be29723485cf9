package span

import "sort"

// Shift returns s moved by delta runes, validated against a buffer of
// bufLen runes. A result with Start >= End or indices outside
// [0, bufLen] fails with ErrInvalidSpan; such spans must be dropped by
// the caller, never clamped, because a clamp could relabel a different
// substring as the entity.
//
// Complexity: O(1).
func (s Span) Shift(delta, bufLen int) (Span, error) {
	out := Span{Start: s.Start + delta, End: s.End + delta, Label: s.Label, Source: s.Source}
	if !out.valid() || out.End > bufLen {
		return Span{}, ErrInvalidSpan
	}
	return out, nil
}

// Validate checks s against a buffer of bufLen runes.
// Complexity: O(1).
func (s Span) Validate(bufLen int) error {
	if !s.valid() || s.End > bufLen {
		return ErrInvalidSpan
	}
	return nil
}

// Intersects reports whether a and b share at least one rune position.
// Touching intervals (a.End == b.Start) do not intersect.
// Complexity: O(1).
func Intersects(a, b Span) bool {
	return a.Start < b.End && b.Start < a.End
}

// ClampTo returns s restricted to [0, bufLen]. If the clamped interval
// is empty the span cannot survive and ErrInvalidSpan is returned.
//
// ClampTo exists for callers that shrink a buffer as a whole (e.g.,
// truncation); per-edit adjustments must use Shift, which refuses to
// clamp.
//
// Complexity: O(1).
func (s Span) ClampTo(bufLen int) (Span, error) {
	out := s
	if out.Start < 0 {
		out.Start = 0
	}
	if out.End > bufLen {
		out.End = bufLen
	}
	if !out.valid() {
		return Span{}, ErrInvalidSpan
	}
	return out, nil
}

// ValidateSet checks that every span in set is valid against a buffer of
// bufLen runes and that no two spans intersect. The first violation is
// returned: ErrInvalidSpan for a bad span, ErrOverlap for a collision.
//
// Complexity: O(n log n) time, O(n) extra space for the order index.
func ValidateSet(set []Span, bufLen int) error {
	for _, s := range set {
		if err := s.Validate(bufLen); err != nil {
			return err
		}
	}

	if len(set) < 2 {
		return nil
	}

	// Check neighbors in start order; any overlap shows up between
	// adjacent spans after sorting.
	order := make([]int, len(set))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return set[order[i]].Start < set[order[j]].Start })

	for i := 1; i < len(order); i++ {
		if Intersects(set[order[i-1]], set[order[i]]) {
			return ErrOverlap
		}
	}
	return nil
}
