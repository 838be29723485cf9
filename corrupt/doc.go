// Package corrupt is the entity-preserving text corruption engine.
//
// 🚀 What it does
//
//	Given a plain-text string, a set of labeled entity spans and a target
//	corruption intensity τ ∈ [0,1], it produces a corrupted version of
//	the text plus a corrected span set that still points at the (possibly
//	mutated) entity text. The output span set is always valid and
//	pairwise non-overlapping; entities that cannot be re-established are
//	dropped and counted, never silently kept wrong.
//
// The engine reconciles two competing goals: inject enough randomized
// character/word noise to simulate scanning artifacts, while damping the
// noise inside entities by their type-specific tolerance so that most of
// them remain locatable afterwards.
//
// Pipeline per run:
//  1. Policy: for every rune position, p = τ·baseRate(class), where the
//     class is outside/boundary/inside relative to the protected spans
//     and inside rates are damped by the entity's tolerance profile.
//  2. Offset-tracking corruptor: applies accepted edits left-to-right on
//     the live buffer, shifting not-yet-final spans by each edit's
//     signed delta; unsafe edits touching a span interior are rejected
//     at generation time.
//  3. Fuzzy relocator: for spans whose protection was violated, a
//     cascade of searches of increasing tolerance (exact nearest →
//     normalized → confusion-class → windowed fuzzy) re-finds the
//     entity in the corrupted buffer.
//  4. Conflict resolver: longest-match-first, first-claim-wins
//     deduplication guarantees a non-overlapping final set.
//  5. Quality scorer: emits a PreservationReport; CorruptWithRetry
//     re-runs at geometrically lower τ when the ratio falls below the
//     acceptance threshold, keeping the best attempt.
//
// ⚙️ Usage:
//
//	opts := corrupt.DefaultOptions()
//	opts.Intensity = corrupt.Heavy
//	opts.Seed = 1337
//
//	res, err := corrupt.Corrupt(text, spans, &opts)
//	if err != nil { /* malformed input */ }
//	fmt.Println(res.Text, res.Report.Ratio())
//
// Determinism: the same text, spans, Options and Seed always produce
// byte-identical output. A run is pure, single-threaded and CPU-bound;
// any number of runs may execute concurrently with zero coordination as
// long as each owns its own Options.Seed-derived stream.
//
// Errors:
//
//	ErrBadOptions   - Options fail validation (τ outside [0,1], ...).
//	ErrNoProfile    - an input span's label has no tolerance profile.
//	span.ErrInvalidSpan / span.ErrOverlap - malformed input span set.
package corrupt
