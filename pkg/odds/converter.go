package odds

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
)

const (
	// maxScale is the largest power of ten that fits an int64 denominator
	maxScale = 18

	// maxCoefficientBits bounds the unscaled value of accepted odds (about 38 digits)
	maxCoefficientBits = 128

	// minExponent is the smallest exponent that can still have at most maxScale
	// significant decimal places once trailing zeros of the coefficient are dropped
	minExponent = -(maxScale + 39)
)

var one = decimal.NewFromInt(1)

// DecimalToFraction converts decimal odds into fractional odds in lowest terms.
//
// The stake is removed first (11.00 -> profit 10), then the profit is scaled by
// 10^d where d is its number of significant decimal places, which always
// yields an integer numerator. All arithmetic is exact; no binary floating
// point is involved.
func DecimalToFraction(odds decimal.NullDecimal) (models.FractionalOdds, error) {
	if !odds.Valid {
		return models.FractionalOdds{}, fmt.Errorf("%w: odds not supplied", ErrInvalidArgument)
	}

	value := odds.Decimal
	if value.IsZero() {
		// 0e-N would otherwise be rescaled to N digits
		value = decimal.Zero
	} else if err := checkMagnitude(value); err != nil {
		return models.FractionalOdds{}, err
	}

	profit := value.Sub(one)

	scale := decimalPlaces(profit)
	if scale > maxScale {
		return models.FractionalOdds{}, fmt.Errorf("%w: odds have more than %d decimal places", ErrInvalidArgument, maxScale)
	}

	numerator := profit.Shift(int32(scale))
	if !numerator.BigInt().IsInt64() {
		return models.FractionalOdds{}, fmt.Errorf("%w: odds out of range", ErrInvalidArgument)
	}

	return Reduce(numerator.IntPart(), pow10(scale))
}

// FractionToDecimal converts fractional odds back into decimal odds (n/d + 1).
// The fraction is reduced first, so a zero denominator from an untrusted
// source surfaces as ErrInvalidArgument instead of a division panic.
func FractionToDecimal(fo models.FractionalOdds) (decimal.Decimal, error) {
	reduced, err := Reduce(fo.Numerator, fo.Denominator)
	if err != nil {
		return decimal.Zero, err
	}

	// Exact for every 10^d denominator DecimalToFraction produces
	return decimal.NewFromInt(reduced.Numerator).
		DivRound(decimal.NewFromInt(reduced.Denominator), maxScale).
		Add(one), nil
}

// checkMagnitude rejects odds whose coefficient or exponent could never fit an
// int64 fraction. It runs before any arithmetic, since Sub rescales both operands
// to a common exponent and a value such as 1e9000000 would expand to millions of digits.
func checkMagnitude(d decimal.Decimal) error {
	if d.Coefficient().BitLen() > maxCoefficientBits {
		return fmt.Errorf("%w: odds have too many digits", ErrInvalidArgument)
	}
	exp := d.Exponent()
	if exp > maxScale {
		return fmt.Errorf("%w: odds out of range", ErrInvalidArgument)
	}
	if exp < minExponent {
		return fmt.Errorf("%w: odds have more than %d decimal places", ErrInvalidArgument, maxScale)
	}
	return nil
}

// decimalPlaces counts significant digits after the decimal point, ignoring
// trailing zeros. It stops counting once maxScale is exceeded.
func decimalPlaces(d decimal.Decimal) int {
	places := 0
	for !d.IsInteger() && places <= maxScale {
		d = d.Shift(1)
		places++
	}
	return places
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
