package corrupt

import (
	"errors"

	"github.com/andesnlp/garbler/mutate"
	"github.com/andesnlp/garbler/span"
)

// Sentinel errors for the corruption engine.
var (
	// ErrBadOptions indicates an Options combination that fails validation.
	ErrBadOptions = errors.New("corrupt: invalid options")

	// ErrNoProfile indicates an input span whose label has no tolerance profile.
	ErrNoProfile = errors.New("corrupt: no tolerance profile for entity type")
)

// Intensity presets mapping the named corruption levels of scanned-
// document simulation to τ bands. Values follow the graduated levels
// used when the noise constants were originally tuned; they are plain
// float64 and any explicit τ ∈ [0,1] is equally valid.
const (
	// Light barely perturbs the text; almost all entities survive.
	Light = 0.10

	// Medium is the default training mix.
	Medium = 0.25

	// Heavy simulates a poor scan.
	Heavy = 0.40

	// Extreme simulates a severely degraded document.
	Extreme = 0.60

	// Catastrophic is for robustness ceilings, not regular training.
	Catastrophic = 0.80
)

// PresetIntensity maps a level name (light, medium, heavy, extreme,
// catastrophic) to its τ. Unknown names report ok=false.
func PresetIntensity(level string) (float64, bool) {
	switch level {
	case "light":
		return Light, true
	case "medium":
		return Medium, true
	case "heavy":
		return Heavy, true
	case "extreme":
		return Extreme, true
	case "catastrophic":
		return Catastrophic, true
	default:
		return 0, false
	}
}

// Options configures a corruption run.
//
// The probability constants (OutsideRate, BoundaryDamp, InsideDamp) are
// deliberately configuration, not hardcoded: they were tuned empirically
// in the source system and are expected to be retuned against the
// engine's statistical properties.
type Options struct {
	// Intensity is τ ∈ [0,1]: the requested corruption density.
	Intensity float64

	// Seed drives the run's deterministic RNG. Seed==0 selects the
	// stable default seed, so zero-value Options are reproducible.
	Seed int64

	// Profiles maps entity types to tolerance profiles.
	// Nil selects DefaultProfiles().
	Profiles Profiles

	// Confusions is the OCR confusion table used for substitutions and
	// confusion-aware relocation. Nil selects mutate.DefaultConfusions().
	Confusions *mutate.Confusions

	// OutsideRate is baseRate(outside); effective probability outside
	// any span is τ·OutsideRate.
	OutsideRate float64

	// BoundaryDamp scales an entity's tolerance at its first/last rune:
	// baseRate(boundary) = tolerance·BoundaryDamp.
	BoundaryDamp float64

	// InsideDamp scales an entity's tolerance strictly inside it:
	// baseRate(inside) = tolerance·InsideDamp.
	InsideDamp float64

	// AcceptThreshold is the minimum preservation ratio a run must reach
	// before CorruptWithRetry stops lowering τ.
	AcceptThreshold float64

	// MaxRetries bounds the retry-at-lower-τ attempts after the first run.
	MaxRetries int

	// RetryDecay multiplies τ on each retry (0 < RetryDecay < 1).
	RetryDecay float64
}

// DefaultOptions returns the tuned defaults: medium intensity, full
// noise density outside entities, tolerance damping 0.5 at boundaries
// and 0.2 inside, 0.6 acceptance with up to 3 geometric retries.
func DefaultOptions() Options {
	return Options{
		Intensity:       Medium,
		OutsideRate:     1.0,
		BoundaryDamp:    0.5,
		InsideDamp:      0.2,
		AcceptThreshold: 0.6,
		MaxRetries:      3,
		RetryDecay:      0.6,
	}
}

// TypeCount is the per-entity-type slice of a PreservationReport.
type TypeCount struct {
	// Total is how many spans of the type entered the run.
	Total int `json:"total"`

	// Preserved is how many were re-established in the corrupted text.
	Preserved int `json:"preserved"`
}

// PreservationReport summarizes how many of the original entities
// survived a corruption run. It is derived, read-only output.
type PreservationReport struct {
	// Total is the number of input spans.
	Total int `json:"total"`

	// Preserved is the number of accepted output spans.
	Preserved int `json:"preserved"`

	// PerType breaks the counts down by entity type.
	PerType map[span.EntityType]TypeCount `json:"per_type"`
}

// Ratio returns Preserved/Total, or 1 for an empty input set (nothing
// was lost).
func (r PreservationReport) Ratio() float64 {
	if r.Total == 0 {
		return 1
	}
	return float64(r.Preserved) / float64(r.Total)
}

// Result is the immutable outcome of a corruption run.
type Result struct {
	// Text is the corrupted text.
	Text string `json:"text"`

	// Spans is the accepted span set, sorted by start offset, with
	// coordinates valid against Text.
	Spans []span.Span `json:"spans"`

	// Report is the quality scorer's verdict.
	Report PreservationReport `json:"report"`

	// Attempts is 1 for a single run, higher when CorruptWithRetry
	// re-ran at lower intensity.
	Attempts int `json:"attempts"`

	// Intensity is the effective τ of the accepted attempt.
	Intensity float64 `json:"intensity"`
}
