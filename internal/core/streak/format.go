package streak

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	apperrors "github.com/louisbranch/cointoss/internal/platform/errors"
)

// Percent renders prob*100 with exactly places decimal digits, rounding
// half to even. Zero renders as "0." followed by places zeros.
func Percent(prob *apd.Decimal, places int) (string, error) {
	if places < 0 {
		return "", apperrors.Invalid(ErrInvalidPlaces, "places", places)
	}
	if prob == nil {
		prob = apd.New(0, 0)
	}

	// Scaling by 100 only moves the exponent, so no rounding happens before
	// the quantize below.
	pct := new(apd.Decimal).Set(prob)
	pct.Exponent += 2

	// Integer part of a percentage has at most three digits.
	ctx := apd.BaseContext.WithPrecision(uint32(places) + 4)
	ctx.Rounding = apd.RoundHalfEven
	out := new(apd.Decimal)
	if _, err := ctx.Quantize(out, pct, -int32(places)); err != nil {
		return "", apperrors.Wrap(apperrors.CodeUnknown, "format percentage", err)
	}
	return out.Text('f'), nil
}

// String formats a range as FROM-TO.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// ParseRanges parses a comma-separated list of inclusive trial ranges such
// as "18-39,361-367". A bare number is a one-value range.
func ParseRanges(s string) ([]Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, apperrors.Invalid(ErrInvalidRange, "trials", `""`)
	}
	parts := strings.Split(s, ",")
	ranges := make([]Range, 0, len(parts))
	for _, part := range parts {
		r, err := parseRange(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseRange(s string) (Range, error) {
	fromText, toText, isSpan := strings.Cut(s, "-")
	if !isSpan {
		toText = fromText
	}
	from, err := strconv.ParseInt(strings.TrimSpace(fromText), 10, 64)
	if err != nil {
		return Range{}, apperrors.Invalid(ErrInvalidRange, "trials", strconv.Quote(s))
	}
	to, err := strconv.ParseInt(strings.TrimSpace(toText), 10, 64)
	if err != nil {
		return Range{}, apperrors.Invalid(ErrInvalidRange, "trials", strconv.Quote(s))
	}
	r := Range{From: from, To: to}
	if r.From < 0 || r.From > r.To {
		return Range{}, apperrors.Invalid(ErrInvalidRange, "trials", r)
	}
	return r, nil
}
