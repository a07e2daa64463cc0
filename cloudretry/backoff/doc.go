// Package backoff generates retry delay sequences with exponential growth
// and full jitter.
//
// A Strategy is a factory: each invocation yields a fresh, finite sequence of
// delays, so a single Strategy can safely back many concurrent retry loops.
// Use NewExponential for deterministic growth, NewFullJitter for randomized
// delays, and WaitContext to block between attempts while respecting
// cancellation and deadlines.
package backoff
