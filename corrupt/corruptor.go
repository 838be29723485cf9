package corrupt

import "github.com/andesnlp/garbler/mutate"

// scan is the offset-tracking corruptor: a single left-to-right pass
// over the live buffer. Earlier edits are applied immediately, so later
// positions are always evaluated against the current buffer version and
// the offset deltas of earlier edits apply automatically.
func (r *run) scan() {
	pos := 0
	for pos < r.buf.Len() {
		class, ws := r.classify(pos)

		p := r.tau * r.rate(class, ws)
		if p > 1 {
			p = 1
		}
		if p > 0 && r.rng.Float64() < p {
			if e, ok := r.propose(class, ws, pos); ok {
				r.apply(e)
				// Jump past the inserted text so a fresh insertion is
				// not immediately re-corrupted.
				adv := len([]rune(e.Insert))
				if adv < 1 {
					adv = 1
				}
				pos = e.Pos + adv
				continue
			}
		}
		pos++
	}
}

// propose draws a permitted mutation kind for the position and asks the
// library for a concrete edit. A refusal at any step (no allowed kinds,
// kind not applicable here, edit vetoed by permitted) is silent,
// expected control flow.
func (r *run) propose(class mutate.Class, ws *workingSpan, pos int) (mutate.Edit, bool) {
	kinds := r.allowedKinds(class, ws)
	if len(kinds) == 0 {
		return mutate.Edit{}, false
	}

	k := kinds[r.rng.Intn(len(kinds))]
	e, ok := r.lib.Propose(k, r.buf.Runes(), pos, r.rng)
	if !ok || !r.permitted(e) {
		return mutate.Edit{}, false
	}
	return e, true
}

// apply executes an accepted edit: the buffer advances one version and
// every live span is adjusted for the edit's signed delta.
//
//   - Spans entirely before the edit are untouched.
//   - Spans starting at or after the edit's end shift by the delta;
//     a shift that would push a span out of bounds drops it.
//   - Spans whose range the edit touches absorb the delta in their end
//     offset and are flagged dirty so the relocator double-checks them
//     by exact lookup first.
func (r *run) apply(e mutate.Edit) {
	delta := e.Delta()
	end := e.Pos + e.DelLen
	newLen := r.buf.Len() + delta

	for _, ws := range r.spans {
		if ws.dropped || ws.cur.End <= e.Pos {
			continue
		}
		if touches(e, ws) {
			ws.cur.End += delta
			ws.dirty = true
			if e.Kind == mutate.Substitute {
				ws.subs++
			}
			if ws.cur.End <= ws.cur.Start || ws.cur.End > newLen {
				ws.dropped = true
			}
			continue
		}
		if ws.cur.Start >= end {
			shifted, err := ws.cur.Shift(delta, newLen)
			if err != nil {
				ws.dropped = true
				continue
			}
			ws.cur = shifted
		}
	}

	r.buf = r.buf.Apply(e)
	r.cumDelta += delta
}
