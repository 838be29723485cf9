package corrupt

// levenshtein returns the edit distance between a and b using a two-row
// rolling DP array, the same memory discipline as a rolling-array DTW:
// only the current and previous rows are kept.
//
// Complexity: O(len(a)·len(b)) time, O(min-side) space.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	// Keep b as the row dimension; swap so the row is the shorter side.
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			ins := curr[j-1] + 1
			del := prev[j] + 1
			sub := prev[j-1] + cost
			m := sub
			if ins < m {
				m = ins
			}
			if del < m {
				m = del
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// editThreshold returns the maximum edit distance the relocator accepts
// for an entity of n runes: 1 for short entities (4-8 runes), scaling
// with length, capped at 30% of the entity length.
//
// Complexity: O(1).
func editThreshold(n int) int {
	t := n / 6
	if t < 1 {
		t = 1
	}
	maxT := n * 3 / 10
	if maxT < 1 {
		maxT = 1
	}
	if t > maxT {
		t = maxT
	}
	return t
}
