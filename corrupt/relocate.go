package corrupt

import (
	"unicode"

	"github.com/andesnlp/garbler/span"
)

// location is a candidate placement for a relocated span.
type location struct {
	start, end int
}

// relocate re-finds a violated span in the corrupted buffer through a
// cascade of matching strategies of increasing tolerance, each stage
// short-circuiting on success:
//
//  1. exact substring search, nearest occurrence to the expected offset;
//  2. case-folded, whitespace-collapsed search, same tie-break;
//  3. confusion-class window match within the type's edit threshold;
//  4. windowed fuzzy match (length ±2) over a bounded neighborhood of
//     the expected offset.
//
// Exhaustion of all four stages means the entity is lost; the caller
// drops and counts it.
func (r *run) relocate(ws *workingSpan) (location, bool) {
	text := r.buf.Runes()
	src := []rune(ws.cur.Source)
	if len(src) == 0 || len(text) == 0 {
		return location{}, false
	}
	expected := ws.cur.Start

	if loc, ok := exactNearest(text, src, expected); ok {
		return loc, true
	}
	if loc, ok := normalizedNearest(text, src, expected); ok {
		return loc, true
	}

	threshold := editThreshold(len(src))
	if loc, ok := r.confusionNearest(text, src, expected, threshold); ok {
		return loc, true
	}
	return r.windowedFuzzy(text, src, expected, threshold)
}

// exactNearest finds the occurrence of src in text nearest to expected.
//
// Complexity: O(n·m) worst case.
func exactNearest(text, src []rune, expected int) (location, bool) {
	best, bestDist := -1, 0
	for s := 0; s+len(src) <= len(text); s++ {
		if !runesEqual(text[s:s+len(src)], src) {
			continue
		}
		d := absInt(s - expected)
		if best < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	if best < 0 {
		return location{}, false
	}
	return location{start: best, end: best + len(src)}, true
}

// normalizedNearest compares after case-folding and collapsing
// whitespace runs, then maps the folded hit back to original offsets.
//
// Complexity: O(n·m) worst case.
func normalizedNearest(text, src []rune, expected int) (location, bool) {
	ftext, idx := foldRunes(text)
	fsrc, _ := foldRunes(src)
	if len(fsrc) == 0 {
		return location{}, false
	}

	best, bestDist := -1, 0
	for s := 0; s+len(fsrc) <= len(ftext); s++ {
		if !runesEqual(ftext[s:s+len(fsrc)], fsrc) {
			continue
		}
		d := absInt(idx[s] - expected)
		if best < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	if best < 0 {
		return location{}, false
	}
	return location{start: idx[best], end: idx[best+len(fsrc)-1] + 1}, true
}

// confusionNearest slides a window of len(src) across the buffer and
// counts positions that are not OCR-confusable with the corresponding
// source rune. The window with the fewest mismatches wins, bounded by
// the type's edit threshold; ties go to the occurrence nearest the
// expected offset.
//
// Complexity: O(n·m).
func (r *run) confusionNearest(text, src []rune, expected, threshold int) (location, bool) {
	conf := r.lib.Confusions()
	best, bestMiss, bestDist := -1, 0, 0

	for s := 0; s+len(src) <= len(text); s++ {
		miss := 0
		for i, sr := range src {
			if !conf.Confusable(sr, text[s+i]) {
				miss++
				if miss > threshold {
					break
				}
			}
		}
		if miss > threshold {
			continue
		}
		d := absInt(s - expected)
		if best < 0 || miss < bestMiss || (miss == bestMiss && d < bestDist) {
			best, bestMiss, bestDist = s, miss, d
		}
	}
	if best < 0 {
		return location{}, false
	}
	return location{start: best, end: best + len(src)}, true
}

// windowedFuzzy slides windows of len(src)±2 across a bounded
// neighborhood of the expected offset (a generous margin of twice the
// cumulative delta seen so far) and accepts the window with the lowest
// edit distance within the threshold.
//
// Complexity: O(margin·m²).
func (r *run) windowedFuzzy(text, src []rune, expected, threshold int) (location, bool) {
	n := len(src)
	margin := 2*absInt(r.cumDelta) + n

	lo := expected - margin
	if lo < 0 {
		lo = 0
	}
	hi := expected + margin
	if hi > len(text)-1 {
		hi = len(text) - 1
	}

	var (
		bestLoc  location
		bestDist = threshold + 1
		bestOff  int
		found    bool
	)
	for s := lo; s <= hi; s++ {
		for w := n - 2; w <= n+2; w++ {
			if w < 1 || s+w > len(text) {
				continue
			}
			d := levenshtein(src, text[s:s+w])
			if d > threshold {
				continue
			}
			off := absInt(s - expected)
			if !found || d < bestDist || (d == bestDist && off < bestOff) {
				bestLoc = location{start: s, end: s + w}
				bestDist, bestOff, found = d, off, true
			}
		}
	}
	return bestLoc, found
}

// finalize verifies every surviving span (exact lookup first), relocates
// the violated ones, resolves conflicts, and scores the run. The
// accepted set is sorted by start offset.
func (r *run) finalize(orig []span.Span) ([]span.Span, PreservationReport) {
	text := r.buf.Runes()

	var cands []candidate
	for _, ws := range r.spans {
		if ws.dropped {
			continue
		}
		if r.matchesSource(ws, text) {
			cands = append(cands, candidate{s: ws.cur, origIdx: ws.origIdx})
			continue
		}
		loc, ok := r.relocate(ws)
		if !ok {
			ws.dropped = true
			continue
		}
		ws.cur.Start, ws.cur.End = loc.start, loc.end
		if ws.cur.Validate(len(text)) != nil {
			ws.dropped = true
			continue
		}
		cands = append(cands, candidate{s: ws.cur, origIdx: ws.origIdx})
	}

	accepted := resolveConflicts(cands)
	return accepted, buildReport(orig, accepted)
}

// matchesSource reports whether the span's current interval still covers
// its verbatim source text.
func (r *run) matchesSource(ws *workingSpan, text []rune) bool {
	if ws.cur.Validate(len(text)) != nil {
		return false
	}
	return string(text[ws.cur.Start:ws.cur.End]) == ws.cur.Source
}

// foldRunes lowercases in and collapses whitespace runs to single
// spaces, returning the folded runes plus a map from folded index to
// original index.
func foldRunes(in []rune) ([]rune, []int) {
	out := make([]rune, 0, len(in))
	idx := make([]int, 0, len(in))
	prevSpace := false
	for i, r := range in {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			out = append(out, ' ')
			idx = append(idx, i)
			prevSpace = true
			continue
		}
		prevSpace = false
		out = append(out, unicode.ToLower(r))
		idx = append(idx, i)
	}
	return out, idx
}

// runesEqual compares two equal-length rune slices.
func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// absInt returns the absolute value of x.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
