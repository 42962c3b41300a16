package streak

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	apperrors "github.com/louisbranch/cointoss/internal/platform/errors"
)

// log10(2) rounded down to five digits, scaled by 1e5. Rounding down keeps
// the early-zero test below conservative.
const log10TwoScaled = 30102

// AtLeastOne returns the probability that at least one of req.Population
// actors is degenerate after req.Trials tosses, computed as
// 1 - exp(N * ln(1-p)) at req.Precision significant digits.
func AtLeastOne(req Request) (*apd.Decimal, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return atLeastOne(newContext(req.Precision), req.Population, req.Trials, req.Direction)
}

func (r Request) validate() error {
	if r.Population <= 0 {
		return apperrors.Invalid(ErrInvalidPopulation, "population", r.Population)
	}
	if r.Trials < 0 {
		return apperrors.Invalid(ErrInvalidTrials, "trials", r.Trials)
	}
	return validateCommon(r.Precision, r.Direction)
}

func validateCommon(precision int, dir Direction) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return apperrors.Invalid(ErrInvalidPrecision, "precision", precision)
	}
	if dir != OneSide && dir != EitherSide {
		return apperrors.Invalid(ErrInvalidDirection, "direction", int(dir))
	}
	return nil
}

func newContext(precision int) *apd.Context {
	ctx := apd.BaseContext.WithPrecision(uint32(precision))
	ctx.Rounding = apd.RoundHalfEven
	return ctx
}

func atLeastOne(ctx *apd.Context, population, trials int64, dir Direction) (*apd.Decimal, error) {
	// Zero tosses leave every actor without a streak.
	if trials == 0 {
		return apd.New(0, 0), nil
	}
	halvings := trials
	if dir == EitherSide {
		halvings--
	}
	if survivalRoundsToOne(halvings, ctx.Precision) {
		return apd.New(0, 0), nil
	}

	one := apd.New(1, 0)
	ed := apd.MakeErrDecimal(ctx)

	survival := new(apd.Decimal)
	ed.Sub(survival, one, halfPow(halvings))
	if err := ed.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "compute survival probability", err)
	}
	if survival.Cmp(one) == 0 {
		return apd.New(0, 0), nil
	}
	if survival.IsZero() {
		// Every actor is degenerate, e.g. either side after a single toss.
		return apd.New(1, 0), nil
	}

	exponent := new(apd.Decimal)
	ed.Ln(exponent, survival)
	ed.Mul(exponent, exponent, apd.New(population, 0))
	if err := ed.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "compute log survival", err)
	}
	if exponent.Cmp(expCutoff(ctx.Precision)) < 0 {
		// exp(exponent) is far below one ulp of 1, so 1-exp rounds to 1.
		return apd.New(1, 0), nil
	}

	none := new(apd.Decimal)
	ed.Exp(none, exponent)
	result := new(apd.Decimal)
	ed.Sub(result, one, none)
	if err := ed.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "compute probability", err)
	}
	return result, nil
}

// halfPow returns 0.5^n exactly as 5^n * 10^-n.
func halfPow(n int64) *apd.Decimal {
	coeff := new(big.Int).Exp(big.NewInt(5), big.NewInt(n), nil)
	return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), int32(-n))
}

// survivalRoundsToOne reports whether 1 - 0.5^n rounds to exactly 1 at the
// given precision because 0.5^n < 10^-(precision+1).
func survivalRoundsToOne(n int64, precision uint32) bool {
	digits := int64(precision) + 1
	if n > 4*digits {
		return true
	}
	return n*log10TwoScaled > digits*100000
}

// expCutoff returns -3*(precision+2). Below it exp(x) < 10^-(precision+2).
func expCutoff(precision uint32) *apd.Decimal {
	return apd.New(-3*(int64(precision)+2), 0)
}
