package dataset

// deriveSeed mixes the session seed and an example index into an
// independent 64-bit seed with a SplitMix64-style finalizer. Examples
// get decorrelated streams while the whole session stays reproducible
// from the one configured seed.
func deriveSeed(session int64, index uint64) int64 {
	x := uint64(session) ^ (index + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
