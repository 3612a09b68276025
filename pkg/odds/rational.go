package odds

import (
	"errors"
	"fmt"
	"math"

	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
)

// ErrInvalidArgument is returned for input the conversion cannot represent:
// absent odds, a zero denominator, or values outside the int64 range.
var ErrInvalidArgument = errors.New("invalid argument")

// Reduce returns numerator/denominator in lowest terms with a positive denominator.
// A zero numerator reduces to 0/1.
func Reduce(numerator, denominator int64) (models.FractionalOdds, error) {
	if denominator == 0 {
		return models.FractionalOdds{}, fmt.Errorf("%w: zero denominator", ErrInvalidArgument)
	}
	// Negating MinInt64 overflows
	if numerator == math.MinInt64 || denominator == math.MinInt64 {
		return models.FractionalOdds{}, fmt.Errorf("%w: %d/%d out of range", ErrInvalidArgument, numerator, denominator)
	}

	if numerator == 0 {
		return models.FractionalOdds{Numerator: 0, Denominator: 1}, nil
	}

	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}

	g := gcd(abs(numerator), denominator)

	return models.FractionalOdds{
		Numerator:   numerator / g,
		Denominator: denominator / g,
	}, nil
}

// gcd is Euclid's algorithm on non-negative operands
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
