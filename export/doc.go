// Package export serializes annotated examples for model training:
// CoNLL files with whitespace tokenization and BIO tags, JSONL records
// for span-based pipelines, and the machine-readable session report.
//
// Exporters take (text, spans) records and never inspect where they
// came from, so clean and corrupted examples export identically.
package export
