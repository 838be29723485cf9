// Package corrupt - input validation shared by Corrupt and
// CorruptWithRetry.
//
// Design principles (matching the rest of the engine):
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors.
//   - A malformed example is rejected before any mutation is generated,
//     so a failed run never produces partial output.
package corrupt

import (
	"fmt"

	"github.com/andesnlp/garbler/span"
)

// validateOptions checks internal consistency of Options. It does not
// look at the text or spans.
//
// Complexity: O(1).
func validateOptions(opts *Options) error {
	if opts.Intensity < 0 || opts.Intensity > 1 {
		return fmt.Errorf("%w: intensity %v outside [0,1]", ErrBadOptions, opts.Intensity)
	}
	if opts.OutsideRate < 0 || opts.BoundaryDamp < 0 || opts.InsideDamp < 0 {
		return fmt.Errorf("%w: negative rate constant", ErrBadOptions)
	}
	if opts.AcceptThreshold < 0 || opts.AcceptThreshold > 1 {
		return fmt.Errorf("%w: accept threshold %v outside [0,1]", ErrBadOptions, opts.AcceptThreshold)
	}
	if opts.MaxRetries < 0 {
		return fmt.Errorf("%w: negative retry bound", ErrBadOptions)
	}
	if opts.RetryDecay <= 0 || opts.RetryDecay >= 1 {
		return fmt.Errorf("%w: retry decay %v outside (0,1)", ErrBadOptions, opts.RetryDecay)
	}
	return nil
}

// validateInput checks the span set against the buffer and confirms that
// every label has a tolerance profile and every Source matches the
// covered substring. Violations reject the whole example before
// corruption begins - fatal for the example, not for a batch.
//
// Complexity: O(n log n) in the number of spans plus O(total span length).
func validateInput(buf []rune, spans []span.Span, profiles Profiles) error {
	if err := span.ValidateSet(spans, len(buf)); err != nil {
		return err
	}
	for _, s := range spans {
		if _, ok := profiles[s.Label]; !ok {
			return fmt.Errorf("%w: %s", ErrNoProfile, s.Label)
		}
		if s.Source != string(buf[s.Start:s.End]) {
			return fmt.Errorf("%w: source text mismatch at [%d,%d)", span.ErrInvalidSpan, s.Start, s.End)
		}
	}
	return nil
}
