package toss

import (
	"errors"
	"fmt"
)

// Outcome is the result of a single fair trial.
type Outcome uint8

const (
	Heads Outcome = iota
	Tails
)

func (o Outcome) String() string {
	switch o {
	case Heads:
		return "Heads"
	case Tails:
		return "Tails"
	default:
		return "Unknown"
	}
}

// Pattern classifies an actor's trial history.
type Pattern int

const (
	PatternNoTrials Pattern = iota
	PatternOnlyHeads
	PatternOnlyTails
	PatternMixed
)

func (p Pattern) String() string {
	switch p {
	case PatternNoTrials:
		return "No trials"
	case PatternOnlyHeads:
		return "Only heads"
	case PatternOnlyTails:
		return "Only tails"
	case PatternMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// ErrInvalidPopulation indicates a population size below one or above
// MaxPopulation.
var ErrInvalidPopulation = errors.New("population size must be positive")

// ErrInvalidTrials indicates a negative trial count or one above MaxTrials.
var ErrInvalidTrials = errors.New("trials per actor must be non-negative")

// ErrMissingSource indicates Run was called without a random source.
var ErrMissingSource = errors.New("random source is required")

// Actor is one participant. The degenerate flags are derived from the
// counters on read, so they can never go stale.
type Actor struct {
	ID    uint32
	Heads uint32
	Tails uint32
}

// Record counts one outcome.
func (a *Actor) Record(o Outcome) {
	if o == Heads {
		a.Heads++
		return
	}
	a.Tails++
}

// Trials returns the number of trials the actor performed.
func (a Actor) Trials() int {
	return int(a.Heads) + int(a.Tails)
}

// OnlyHeads reports whether every trial so far came up heads.
func (a Actor) OnlyHeads() bool {
	return a.Heads > 0 && a.Tails == 0
}

// OnlyTails reports whether every trial so far came up tails.
func (a Actor) OnlyTails() bool {
	return a.Tails > 0 && a.Heads == 0
}

// Pattern returns the single pattern the actor's history matches.
func (a Actor) Pattern() Pattern {
	switch {
	case a.OnlyHeads():
		return PatternOnlyHeads
	case a.OnlyTails():
		return PatternOnlyTails
	case a.Heads == 0 && a.Tails == 0:
		return PatternNoTrials
	default:
		return PatternMixed
	}
}

// Name returns a one-based display name such as "Player1".
func (a Actor) Name() string {
	return fmt.Sprintf("Player%d", uint64(a.ID)+1)
}
