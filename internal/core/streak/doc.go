// Package streak computes the exact probability that at least one actor in
// a population tossed only one side of a fair coin.
//
// For a single actor the chance of an unbroken streak in one direction
// after T tosses is p = 0.5^T. Assuming independent actors, the chance that
// at least one of N actors has such a streak is
//
//	1 - (1-p)^N = 1 - exp(N * ln(1-p))
//
// N is in the hundreds of millions and 1-p sits extremely close to one, so
// every step runs in decimal arithmetic at a caller-chosen number of
// significant digits. Each call builds its own decimal context; no
// precision setting is shared between calls or goroutines.
//
// # Underflow
//
// Once p drops below half a unit in the last place of 1-p, the survival
// probability rounds to exactly one and the result is exactly zero. This is
// the expected end of a sweep, not an error.
package streak
