package streak

import (
	"iter"

	apperrors "github.com/louisbranch/cointoss/internal/platform/errors"
)

// Curve validates req and returns a lazy sequence with one Point per trials
// value, ranges in the given order and each range ascending. Nothing is
// computed until the sequence is ranged over, and ranging over it again
// recomputes from the start.
//
// If a computation fails the sequence yields the error and stops.
func Curve(req CurveRequest) (iter.Seq2[Point, error], error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	ranges := append([]Range(nil), req.Ranges...)

	return func(yield func(Point, error) bool) {
		ctx := newContext(req.Precision)
		for _, r := range ranges {
			for trials := r.From; trials <= r.To; trials++ {
				prob, err := atLeastOne(ctx, req.Population, trials, req.Direction)
				if err != nil {
					yield(Point{}, err)
					return
				}
				if !yield(Point{Trials: trials, Population: req.Population, Probability: prob}, nil) {
					return
				}
			}
		}
	}, nil
}

// Points returns the number of points Curve will yield for req.
func (req CurveRequest) Points() int64 {
	var n int64
	for _, r := range req.Ranges {
		n += r.Len()
	}
	return n
}

func (req CurveRequest) validate() error {
	if req.Population <= 0 {
		return apperrors.Invalid(ErrInvalidPopulation, "population", req.Population)
	}
	if len(req.Ranges) == 0 {
		return apperrors.Invalid(ErrInvalidRange, "ranges", "none")
	}
	for _, r := range req.Ranges {
		if r.From < 0 || r.From > r.To {
			return apperrors.Invalid(ErrInvalidRange, "range", r)
		}
	}
	return validateCommon(req.Precision, req.Direction)
}
