package corrupt

import "github.com/andesnlp/garbler/span"

// buildReport computes the preservation counts for one attempt: overall
// and per entity type. Dropped entities are an expected, counted
// outcome, never an error.
//
// Complexity: O(k).
func buildReport(orig, accepted []span.Span) PreservationReport {
	rep := PreservationReport{
		Total:     len(orig),
		Preserved: len(accepted),
		PerType:   make(map[span.EntityType]TypeCount),
	}
	for _, s := range orig {
		tc := rep.PerType[s.Label]
		tc.Total++
		rep.PerType[s.Label] = tc
	}
	for _, s := range accepted {
		tc := rep.PerType[s.Label]
		tc.Preserved++
		rep.PerType[s.Label] = tc
	}
	return rep
}

// Merge folds other into r, summing overall and per-type counts.
// Used by batch drivers to aggregate per-example reports.
func (r *PreservationReport) Merge(other PreservationReport) {
	r.Total += other.Total
	r.Preserved += other.Preserved
	if r.PerType == nil {
		r.PerType = make(map[span.EntityType]TypeCount)
	}
	for t, tc := range other.PerType {
		agg := r.PerType[t]
		agg.Total += tc.Total
		agg.Preserved += tc.Preserved
		r.PerType[t] = agg
	}
}
