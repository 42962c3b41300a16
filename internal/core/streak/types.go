package streak

import (
	"errors"

	"github.com/cockroachdb/apd/v3"
)

// Precision defaults and limits, in significant decimal digits.
const (
	DefaultPrecision = 110
	DefaultPlaces    = 100
	MinPrecision     = 10
	// MaxPrecision bounds the cost of a single ln/exp evaluation.
	MaxPrecision = 1_000_000
)

// Direction selects which streaks count as degenerate.
type Direction int

const (
	// OneSide counts actors that only tossed heads. Tails is symmetric.
	OneSide Direction = iota
	// EitherSide counts actors that only tossed heads or only tossed tails.
	EitherSide
)

func (d Direction) String() string {
	switch d {
	case OneSide:
		return "one side"
	case EitherSide:
		return "either side"
	default:
		return "unknown"
	}
}

// ErrInvalidPopulation indicates a population size below one.
var ErrInvalidPopulation = errors.New("population size must be positive")

// ErrInvalidTrials indicates a negative number of trials.
var ErrInvalidTrials = errors.New("trials must be non-negative")

// ErrInvalidPrecision indicates a precision outside MinPrecision..MaxPrecision.
var ErrInvalidPrecision = errors.New("precision must be between 10 and 1000000 digits")

// ErrInvalidPlaces indicates a negative number of decimal places.
var ErrInvalidPlaces = errors.New("decimal places must be non-negative")

// ErrInvalidRange indicates a missing, malformed or inverted trials range.
var ErrInvalidRange = errors.New("trials range must be FROM-TO with 0 <= FROM <= TO")

// ErrInvalidDirection indicates an unknown Direction value.
var ErrInvalidDirection = errors.New("unknown streak direction")

// Request describes one probability evaluation.
type Request struct {
	Population int64
	Trials     int64
	// Precision is the number of significant digits carried by every
	// intermediate step.
	Precision int
	Direction Direction
}

// Range is an inclusive span of trial counts.
type Range struct {
	From int64
	To   int64
}

// Len returns the number of trial counts in the range.
func (r Range) Len() int64 {
	return r.To - r.From + 1
}

// CurveRequest describes a sweep over one or more trial ranges.
type CurveRequest struct {
	Population int64
	Ranges     []Range
	Precision  int
	Direction  Direction
}

// Point is one evaluated trials value of a sweep.
type Point struct {
	Trials      int64
	Population  int64
	Probability *apd.Decimal
}

// Percent renders the point's probability as a percentage with places
// decimal digits.
func (p Point) Percent(places int) (string, error) {
	return Percent(p.Probability, places)
}
