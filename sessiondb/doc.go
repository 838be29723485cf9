// Package sessiondb records dataset build sessions in a sqlite file
// for reproducibility audits: which seed and configuration produced a
// dataset, and how each example fared.
//
// A session row stores the seed and aggregate preservation counts; one
// outcome row per example stores the level, attempt count and
// preservation ratio. Writes go through a single transaction per
// session so a crashed build never leaves a half-recorded session.
package sessiondb
