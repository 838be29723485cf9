// Package garbler is an entity-preserving text corruption engine for
// building noisy NER training data.
//
// 🚀 What is garbler?
//
//	A deterministic library that takes text with labeled entity spans
//	and produces realistically corrupted text whose annotations still
//	point at the right characters:
//		• span:      labeled rune intervals, validity & overlap invariants
//		• mutate:    OCR-style atomic mutations (confusions, fragments, stray symbols)
//		• corrupt:   the policy-driven corruptor, fuzzy relocator & quality scorer
//		• piigen:    synthetic Chilean PII values and annotated sentences
//		• dataset:   concurrent batch builder with per-example derived seeds
//		• export:    CoNLL/BIO and JSONL writers, JSON session reports
//		• sessiondb: sqlite session log for reproducibility audits
//
// ✨ Why garbler?
//
//   - Deterministic – every run replays byte-for-byte from one seed
//   - Honest offsets – spans are relocated or dropped, never silently wrong
//   - Tunable damage – per-entity tolerance profiles, five intensity presets
//   - Pure engine – no I/O or logging below the batch layer
//
// Quick example:
//
//	opts := corrupt.DefaultOptions()
//	opts.Intensity = corrupt.Heavy
//	res, err := corrupt.Corrupt(text, spans, &opts)
//
// Start with package corrupt: Corrupt and CorruptWithRetry are the two
// entry points; everything else supports them.
//
//	go get github.com/andesnlp/garbler
package garbler
