package corrupt

import "github.com/andesnlp/garbler/mutate"

// classify returns the position class of pos relative to the live span
// set and the span claiming it (nil when outside). Spans are pairwise
// non-overlapping, so the first claimant is the only one.
//
// Complexity: O(k) in the span count.
func (r *run) classify(pos int) (mutate.Class, *workingSpan) {
	for _, ws := range r.spans {
		if ws.dropped || pos < ws.cur.Start || pos >= ws.cur.End {
			continue
		}
		if pos == ws.cur.Start || pos == ws.cur.End-1 {
			return mutate.Boundary, ws
		}
		return mutate.Inside, ws
	}
	return mutate.Outside, nil
}

// rate returns baseRate(class): close to 1 outside entities, damped by
// the entity's own tolerance on its boundary and interior. The effective
// probability at a position is τ·rate.
//
// Complexity: O(1).
func (r *run) rate(class mutate.Class, ws *workingSpan) float64 {
	switch class {
	case mutate.Outside:
		return r.opts.OutsideRate
	case mutate.Boundary:
		return r.profiles[ws.cur.Label].Tolerance * r.opts.BoundaryDamp
	default:
		return r.profiles[ws.cur.Label].Tolerance * r.opts.InsideDamp
	}
}

// allowedKinds returns the mutation kinds the policy permits at a
// position of the given class. Outside positions allow the full
// catalogue; positions claimed by a span exclude the type's unsafe list
// and enforce the substitution budget. An empty result is the
// zero-opportunity case (e.g., a fully protected one-rune span) and
// simply yields no edit there.
//
// Complexity: O(kinds · unsafe list).
func (r *run) allowedKinds(class mutate.Class, ws *workingSpan) []mutate.Kind {
	all := mutate.Kinds()
	if class == mutate.Outside {
		return all
	}

	prof := r.profiles[ws.cur.Label]
	kinds := make([]mutate.Kind, 0, len(all))
	for _, k := range all {
		if prof.unsafe(k) {
			continue
		}
		if k == mutate.Substitute && prof.MaxSubstitutions > 0 && ws.subs >= prof.MaxSubstitutions {
			continue
		}
		kinds = append(kinds, k)
	}
	return kinds
}

// permitted vets a concrete proposed edit against every live span: an
// edit whose range touches a span's interior while its kind is unsafe
// for that type is rejected at generation time (never applied), which is
// cheaper than correcting after the fact and avoids producing text the
// relocator cannot realistically recover.
//
// Complexity: O(k).
func (r *run) permitted(e mutate.Edit) bool {
	for _, ws := range r.spans {
		if ws.dropped || !touches(e, ws) {
			continue
		}
		prof := r.profiles[ws.cur.Label]
		if prof.unsafe(e.Kind) {
			return false
		}
		if e.Kind == mutate.Substitute && prof.MaxSubstitutions > 0 && ws.subs >= prof.MaxSubstitutions {
			return false
		}
	}
	return true
}

// touches reports whether e's affected range intersects ws. A deleting
// edit touches when its delete range overlaps the span interval; a pure
// insertion touches only when it lands strictly inside the span (an
// insertion at either edge shifts the span without entering it).
func touches(e mutate.Edit, ws *workingSpan) bool {
	if e.DelLen > 0 {
		return ws.cur.Start < e.Pos+e.DelLen && e.Pos < ws.cur.End
	}
	return ws.cur.Start < e.Pos && e.Pos < ws.cur.End
}
