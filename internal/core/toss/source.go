package toss

import (
	"math/rand/v2"

	"github.com/louisbranch/cointoss/internal/random"
)

// Source draws unbiased binary outcomes.
type Source interface {
	Toss() Outcome
}

// PCGSource is a Source backed by a PCG generator. Each 64-bit draw is
// spent one bit per toss, so the hot loop never allocates.
type PCGSource struct {
	rng  *rand.PCG
	bits uint64
	left uint
}

// NewPCGSource returns a PCGSource seeded from seed.
func NewPCGSource(seed int64) *PCGSource {
	return newStreamSource(seed, 0)
}

func newStreamSource(seed int64, stream uint64) *PCGSource {
	hi, lo := random.Stream(seed, stream)
	return &PCGSource{rng: rand.NewPCG(hi, lo)}
}

// Toss returns the next outcome.
func (s *PCGSource) Toss() Outcome {
	if s.left == 0 {
		s.bits = s.rng.Uint64()
		s.left = 64
	}
	o := Outcome(s.bits & 1)
	s.bits >>= 1
	s.left--
	return o
}

// SequenceSource replays a fixed list of outcomes, wrapping around at the
// end. An empty SequenceSource always returns Heads.
type SequenceSource struct {
	outcomes []Outcome
	next     int
}

// NewSequenceSource returns a SequenceSource cycling through outcomes.
func NewSequenceSource(outcomes ...Outcome) *SequenceSource {
	return &SequenceSource{outcomes: append([]Outcome(nil), outcomes...)}
}

// Toss returns the next outcome in the sequence.
func (s *SequenceSource) Toss() Outcome {
	if len(s.outcomes) == 0 {
		return Heads
	}
	o := s.outcomes[s.next]
	s.next = (s.next + 1) % len(s.outcomes)
	return o
}
