package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecimalOdds_MarshalJSON tests that odds serialise as bare JSON numbers
func TestDecimalOdds_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		odds     string
		expected string
	}{
		{name: "Whole", odds: "11", expected: "11.0"},
		{name: "Whole with scale", odds: "10.000000000000000000", expected: "10.0"},
		{name: "Fraction", odds: "2.5", expected: "2.5"},
		{name: "Trailing zeros trimmed", odds: "3.7500", expected: "3.75"},
		{name: "Eighteen places", odds: "1.000000000000000001", expected: "1.000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(NewDecimalOdds(decimal.RequireFromString(tt.odds)))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(b))
		})
	}
}

// TestDecimalOdds_UnmarshalJSON tests decoding a bare number back into odds
func TestDecimalOdds_UnmarshalJSON(t *testing.T) {
	var event DecimalEvent
	require.NoError(t, json.Unmarshal([]byte(`{"bet_id":1,"event":"E","name":"N","odds":10.0}`), &event))

	assert.True(t, decimal.NewFromInt(10).Equal(event.Odds.Decimal))
}
