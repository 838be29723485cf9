// Package dataset drives batch generation of corrupted NER training
// examples: generate a clean annotated sentence, corrupt it at a
// configured intensity level, retry below the quality threshold, and
// aggregate preservation statistics for the whole session.
//
// Examples run concurrently, one goroutine each behind a semaphore.
// Determinism is kept under concurrency by deriving each example's RNG
// seed from the global session seed and the example index; results land
// in index order regardless of scheduling, so two builds with the same
// configuration are identical byte for byte.
//
// The engine packages stay log-free; batch-level progress goes through
// the *slog.Logger handed to NewBuilder.
package dataset
