package corrupt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLevenshtein_Basics pins the classic distance cases.
func TestLevenshtein_Basics(t *testing.T) {
	assert.Equal(t, 0, levenshtein([]rune("rut"), []rune("rut")))
	assert.Equal(t, 3, levenshtein([]rune(""), []rune("abc")))
	assert.Equal(t, 3, levenshtein([]rune("abc"), []rune("")))
	assert.Equal(t, 1, levenshtein([]rune("maria"), []rune("mar1a")), "one substitution")
	assert.Equal(t, 1, levenshtein([]rune("maria"), []rune("mariia")), "one insertion")
	assert.Equal(t, 1, levenshtein([]rune("maria"), []rune("mara")), "one deletion")
	assert.Equal(t, 3, levenshtein([]rune("kitten"), []rune("sitting")))
}

// TestLevenshtein_Unicode verifies distances are counted in runes.
func TestLevenshtein_Unicode(t *testing.T) {
	assert.Equal(t, 1, levenshtein([]rune("PEÑA"), []rune("PENA")))
	assert.Equal(t, 2, levenshtein([]rune("JOSÉ"), []rune("J0SE")))
}

// TestEditThreshold verifies the 1-for-short, scaled, 30%-capped policy.
func TestEditThreshold(t *testing.T) {
	for n := 4; n <= 8; n++ {
		assert.Equal(t, 1, editThreshold(n), "short entities allow one edit (n=%d)", n)
	}
	assert.Equal(t, 1, editThreshold(1), "never below one")
	assert.Equal(t, 2, editThreshold(13), "scales with length")
	assert.Equal(t, 3, editThreshold(20))
	assert.LessOrEqual(t, editThreshold(40), 12, "capped at 30%")
	for n := 1; n < 100; n++ {
		maxT := n * 3 / 10
		if maxT < 1 {
			maxT = 1
		}
		assert.LessOrEqual(t, editThreshold(n), maxT, "cap holds for n=%d", n)
	}
}
