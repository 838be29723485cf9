package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/andesnlp/garbler/corrupt"
	"github.com/andesnlp/garbler/piigen"
	"github.com/google/uuid"
)

// Outcome is the result of one example's generate-corrupt-retry cycle.
type Outcome struct {
	// Index is the example's position in the session, the key of its
	// derived RNG stream.
	Index int `json:"index"`
	// Level names the corruption band the example was drawn at.
	Level string `json:"level"`
	// Clean is the generated annotated sentence before corruption.
	Clean piigen.Example `json:"clean"`
	// Result is the corruption verdict: corrupted text, surviving
	// spans, preservation report and attempts spent.
	Result corrupt.Result `json:"result"`
}

// Report aggregates one build session.
type Report struct {
	// SessionID identifies the build for audit logs and the session
	// database.
	SessionID string `json:"session_id"`
	// Seed is the session seed the whole build derives from.
	Seed int64 `json:"seed"`
	// Outcomes holds every example in index order.
	Outcomes []Outcome `json:"outcomes"`
	// Overall merges preservation counts across all levels.
	Overall corrupt.PreservationReport `json:"overall"`
	// PerLevel splits preservation counts by corruption band.
	PerLevel map[string]*corrupt.PreservationReport `json:"per_level"`
}

// Builder runs dataset build sessions from one validated configuration.
type Builder struct {
	cfg      *Config
	profiles corrupt.Profiles
	log      *slog.Logger
}

// NewBuilder validates cfg and resolves the tolerance-profile table.
// A nil logger discards batch progress.
func NewBuilder(cfg *Config, logger *slog.Logger) (*Builder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	profiles := corrupt.DefaultProfiles()
	if cfg.ProfilePath != "" {
		var err error
		if profiles, err = corrupt.LoadProfiles(cfg.ProfilePath); err != nil {
			return nil, err
		}
	}
	return &Builder{cfg: cfg, profiles: profiles, log: logger}, nil
}

// Build generates and corrupts cfg.Count examples concurrently and
// returns the aggregated session report. Cancellation of ctx stops the
// batch between examples; individual corruption runs are CPU-bound and
// short, so they finish uninterrupted.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	id := uuid.NewString()
	b.log.Info("dataset build started",
		"session", id, "count", b.cfg.Count, "seed", b.cfg.Seed,
		"concurrency", b.cfg.MaxConcurrency)

	outcomes := make([]Outcome, b.cfg.Count)
	errs := make([]error, b.cfg.Count)
	sem := make(chan struct{}, b.cfg.MaxConcurrency)

	var wg sync.WaitGroup
	for i := 0; i < b.cfg.Count; i++ {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}
			outcomes[idx], errs[idx] = b.buildOne(idx)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		b.log.Warn("dataset build cancelled", "session", id)
		return nil, fmt.Errorf("dataset: build: %w", err)
	}
	for idx, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("dataset: example %d: %w", idx, err)
		}
	}

	report := &Report{
		SessionID: id,
		Seed:      b.cfg.Seed,
		Outcomes:  outcomes,
		PerLevel:  make(map[string]*corrupt.PreservationReport),
	}
	for _, o := range outcomes {
		report.Overall.Merge(o.Result.Report)
		lr, ok := report.PerLevel[o.Level]
		if !ok {
			lr = &corrupt.PreservationReport{}
			report.PerLevel[o.Level] = lr
		}
		lr.Merge(o.Result.Report)
	}

	b.log.Info("dataset build finished",
		"session", id, "examples", len(outcomes),
		"preserved_ratio", report.Overall.Ratio())
	return report, nil
}

// buildOne runs the generate-corrupt-retry cycle for one example. The
// example's seed is derived from the session seed and the index, with
// separate sub-streams for generation and corruption.
func (b *Builder) buildOne(idx int) (Outcome, error) {
	seed := deriveSeed(b.cfg.Seed, uint64(idx))
	rng := rand.New(rand.NewSource(deriveSeed(seed, 1)))

	gen := piigen.NewGenerator(rng)
	clean := gen.Example()
	level := b.pickLevel(rng)

	tau, err := level.intensity()
	if err != nil {
		return Outcome{}, err
	}

	opts := corrupt.DefaultOptions()
	opts.Intensity = tau
	opts.Seed = deriveSeed(seed, 2)
	opts.Profiles = b.profiles
	opts.AcceptThreshold = b.cfg.AcceptThreshold
	opts.MaxRetries = b.cfg.MaxRetries

	res, err := corrupt.CorruptWithRetry(clean.Text, clean.Spans, &opts)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Index: idx, Level: level.Name, Clean: clean, Result: res}, nil
}

// pickLevel draws a corruption band weighted by the configured mix.
func (b *Builder) pickLevel(rng *rand.Rand) Level {
	total := 0.0
	for _, l := range b.cfg.Levels {
		total += l.Weight
	}
	x := rng.Float64() * total
	for _, l := range b.cfg.Levels {
		if x < l.Weight {
			return l
		}
		x -= l.Weight
	}
	return b.cfg.Levels[len(b.cfg.Levels)-1]
}
