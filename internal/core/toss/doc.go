// Package toss simulates a population of coin-tossing actors.
//
// Every actor performs the same number of fair binary trials. After the
// trials the population is folded into a Summary that reports how many
// actors only ever produced heads and how many only ever produced tails.
//
// # Determinism
//
// Run is deterministic with respect to its Source. Simulate is
// deterministic with respect to Request.Seed: actors are split into
// fixed-size shards and each shard draws from its own generator derived
// from (Seed, shard index), so the result does not depend on the number of
// workers or on goroutine scheduling.
//
// # Errors
//
// A non-positive population or a negative trial count is rejected before
// any trial runs. Both errors carry the InvalidParameter code from
// internal/platform/errors.
package toss
