package corrupt

import (
	"math/rand"

	"github.com/andesnlp/garbler/mutate"
	"github.com/andesnlp/garbler/span"
)

// workingSpan is a span's mutable bookkeeping inside one run: its
// current best-known location, its original appearance order, and the
// dirty/dropped flags driving relocation.
type workingSpan struct {
	cur     span.Span
	origIdx int
	dirty   bool
	dropped bool
	subs    int // substitutions spent inside this span
}

// run is the CorruptionRun aggregate: one buffer lineage, the working
// span set, the cumulative offset delta, and the run-private RNG. It is
// created per input example and discarded after the verdict.
type run struct {
	opts     *Options
	profiles Profiles
	lib      *mutate.Library
	rng      *rand.Rand
	buf      TextBuffer
	spans    []*workingSpan
	cumDelta int
	tau      float64
}

// withDefaults copies opts, filling nil table references with the shared
// defaults. A nil opts selects DefaultOptions entirely.
func withDefaults(opts *Options) Options {
	var o Options
	if opts == nil {
		o = DefaultOptions()
	} else {
		o = *opts
	}
	if o.Profiles == nil {
		o.Profiles = DefaultProfiles()
	}
	if o.Confusions == nil {
		o.Confusions = mutate.DefaultConfusions()
	}
	return o
}

// newRun assembles the aggregate for one attempt.
func newRun(o *Options, buf TextBuffer, spans []span.Span) *run {
	r := &run{
		opts:     o,
		profiles: o.Profiles,
		lib:      mutate.NewLibrary(o.Confusions),
		rng:      rngFromSeed(o.Seed),
		buf:      buf,
		tau:      o.Intensity,
	}
	r.spans = make([]*workingSpan, len(spans))
	for i, s := range spans {
		r.spans[i] = &workingSpan{cur: s, origIdx: i}
	}
	return r
}

// Corrupt runs one corruption attempt over text and its entity spans.
//
// The input span set must be valid, non-overlapping, and covered by the
// tolerance profile table; violations reject the example with a sentinel
// error before any mutation is generated. The returned Result holds the
// corrupted text, the accepted span set (sorted by start, valid against
// the corrupted text, pairwise non-overlapping) and the preservation
// report. At Intensity 0 the output equals the input.
//
// Complexity: O(n·k) for the scan plus relocation cost for dirty spans,
// where n is the buffer length and k the span count.
func Corrupt(text string, spans []span.Span, opts *Options) (Result, error) {
	o := withDefaults(opts)
	if err := validateOptions(&o); err != nil {
		return Result{}, err
	}

	buf := NewTextBuffer(text)
	if err := validateInput(buf.Runes(), spans, o.Profiles); err != nil {
		return Result{}, err
	}

	r := newRun(&o, buf, spans)
	r.scan()
	accepted, report := r.finalize(spans)

	return Result{
		Text:      r.buf.String(),
		Spans:     accepted,
		Report:    report,
		Attempts:  1,
		Intensity: o.Intensity,
	}, nil
}

// CorruptWithRetry runs Corrupt and, while the preservation ratio stays
// below Options.AcceptThreshold, retries with geometrically lower
// intensity (τ·RetryDecay per attempt, bounded by MaxRetries). Each
// attempt uses an independently derived RNG stream. The first accepted
// attempt is returned; if none reaches the threshold, the best-scoring
// attempt is returned and the caller decides whether to keep or discard
// the example.
func CorruptWithRetry(text string, spans []span.Span, opts *Options) (Result, error) {
	o := withDefaults(opts)
	if err := validateOptions(&o); err != nil {
		return Result{}, err
	}

	var (
		best     Result
		haveBest bool
	)
	tau := o.Intensity
	attempts := 0

	for attempt := 0; attempt <= o.MaxRetries; attempt++ {
		ao := o
		ao.Intensity = tau
		if attempt > 0 {
			ao.Seed = deriveSeed(o.Seed, uint64(attempt))
		}

		res, err := Corrupt(text, spans, &ao)
		if err != nil {
			return Result{}, err
		}
		attempts++
		res.Attempts = attempts

		if res.Report.Ratio() >= o.AcceptThreshold {
			return res, nil
		}
		if !haveBest || res.Report.Ratio() > best.Report.Ratio() {
			best = res
			best.Attempts = attempts
			haveBest = true
		}
		tau *= o.RetryDecay
	}

	best.Attempts = attempts
	return best, nil
}
