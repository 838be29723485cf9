package span_test

import (
	"testing"

	"github.com/andesnlp/garbler/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Valid verifies construction of a well-formed span.
func TestNew_Valid(t *testing.T) {
	s, err := span.New(3, 8, span.Email, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Start)
	assert.Equal(t, 8, s.End)
	assert.Equal(t, 5, s.Len())
}

// TestNew_Degenerate verifies that empty and inverted intervals are rejected.
func TestNew_Degenerate(t *testing.T) {
	_, err := span.New(5, 5, span.Email, "")
	assert.ErrorIs(t, err, span.ErrInvalidSpan, "empty interval must be rejected")

	_, err = span.New(7, 4, span.Email, "")
	assert.ErrorIs(t, err, span.ErrInvalidSpan, "inverted interval must be rejected")

	_, err = span.New(-1, 4, span.Email, "")
	assert.ErrorIs(t, err, span.ErrInvalidSpan, "negative start must be rejected")
}

// TestShift_InBounds verifies a plain shift inside buffer bounds.
func TestShift_InBounds(t *testing.T) {
	s, _ := span.New(4, 9, span.IDNumber, "12345")

	out, err := s.Shift(+3, 20)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Start)
	assert.Equal(t, 12, out.End)
	assert.Equal(t, s.Source, out.Source, "Shift must carry the source text")
}

// TestShift_OutOfBounds verifies that Shift drops rather than clamps.
func TestShift_OutOfBounds(t *testing.T) {
	s, _ := span.New(4, 9, span.IDNumber, "12345")

	_, err := s.Shift(-5, 20)
	assert.ErrorIs(t, err, span.ErrInvalidSpan, "shift below zero must error")

	_, err = s.Shift(+15, 20)
	assert.ErrorIs(t, err, span.ErrInvalidSpan, "shift past buffer end must error")
}

// TestIntersects covers overlapping, touching, and disjoint pairs.
func TestIntersects(t *testing.T) {
	a, _ := span.New(0, 5, span.CustomerName, "MARIA")
	b, _ := span.New(4, 9, span.Address, "A SOTO")
	c, _ := span.New(5, 9, span.Address, "SOTO")

	assert.True(t, span.Intersects(a, b), "overlapping spans intersect")
	assert.True(t, span.Intersects(b, a), "intersection is symmetric")
	assert.False(t, span.Intersects(a, c), "touching spans do not intersect")
}

// TestClampTo verifies clamping to a shrunken buffer.
func TestClampTo(t *testing.T) {
	s, _ := span.New(4, 12, span.Amount, "$10.000")

	out, err := s.ClampTo(10)
	require.NoError(t, err)
	assert.Equal(t, 10, out.End)

	_, err = s.ClampTo(3)
	assert.ErrorIs(t, err, span.ErrInvalidSpan, "fully truncated span must be dropped")
}

// TestValidateSet verifies the pairwise non-overlap invariant.
func TestValidateSet(t *testing.T) {
	a, _ := span.New(9, 23, span.Email, "maria@mail.cl")
	b, _ := span.New(29, 42, span.IDNumber, "12.345.678-9")

	assert.NoError(t, span.ValidateSet([]span.Span{a, b}, 42))
	assert.NoError(t, span.ValidateSet(nil, 0), "empty set is trivially valid")

	bad, _ := span.New(20, 31, span.Address, "")
	assert.ErrorIs(t, span.ValidateSet([]span.Span{a, b, bad}, 42), span.ErrOverlap)

	assert.ErrorIs(t, span.ValidateSet([]span.Span{a}, 10), span.ErrInvalidSpan,
		"span past buffer end must invalidate the set")
}
