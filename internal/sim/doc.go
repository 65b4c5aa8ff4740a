// Package sim implements the synthetic cohort generator.
//
// The generator encodes a small causal simulation: daily platform usage is
// drawn first, then each downstream field is a noise-perturbed function of
// its causes (usage drives social comparison, usage and comparison drive
// distress scores, distress drives break-taking, and breaks sometimes help).
//
// Determinism is the central contract. A Generator owns one explicit
// pseudorandom source seeded from a caller-supplied seed, and every draw
// consumes that source in a fixed, documented order, so identical
// (params, count, seed) inputs always produce identical cohorts.
//
// Design decision: the pseudorandom source is owned by the Generator rather
// than taken from package-global state. This makes runs reproducible and
// lets tests run in parallel with independent generators. It is also the
// package's one concurrency hazard: a single Generator must not be shared
// across goroutines; give each its own seed instead.
package sim
