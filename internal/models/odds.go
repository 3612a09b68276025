package models

import (
	"github.com/shopspring/decimal"
)

// FractionalOdds represents odds as profit relative to stake (numerator/denominator).
// Values produced by the reducer in pkg/odds are in lowest terms with a positive denominator.
type FractionalOdds struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

// DecimalOdds is a decimal price (total return per unit stake).
// It is serialised as a bare JSON number rather than the quoted string
// decimal.Decimal produces by default.
type DecimalOdds struct {
	decimal.Decimal
}

// NewDecimalOdds wraps a decimal value
func NewDecimalOdds(d decimal.Decimal) DecimalOdds {
	return DecimalOdds{Decimal: d}
}

// MarshalJSON writes the odds as a JSON number.
// Whole values keep one decimal place (11.0), matching how clients render prices.
func (o DecimalOdds) MarshalJSON() ([]byte, error) {
	if o.Decimal.IsInteger() {
		return []byte(o.Decimal.StringFixed(1)), nil
	}
	return []byte(o.Decimal.String()), nil
}

// ErrorPayload is the body returned for every error the proxy originates
type ErrorPayload struct {
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}
