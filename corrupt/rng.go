// Package corrupt - RNG utilities.
//
// Determinism contract: the same Options.Seed always yields the same
// edit sequence. No time-based sources anywhere; seed==0 selects a
// stable default so zero-value Options stay reproducible.
//
// math/rand.Rand is not goroutine-safe; each run owns its own instance
// and retry attempts derive independent streams.
package corrupt

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for seed, applying the
// seed==0 policy.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with a SplitMix64-style finalizer, so retry attempts (and
// batch examples) get decorrelated independent streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
