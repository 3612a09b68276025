// Package translate maps bets, receipts and events between the decimal-facing
// shapes used by clients and the fractional-facing shapes used upstream.
// Non-odds fields are copied verbatim; odds go through pkg/odds.
package translate

import (
	"fmt"

	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
	"github.com/cypherlabdev/odds-translation-proxy/pkg/odds"
)

// ToFractionalBet converts a client bet into the upstream's shape
func ToFractionalBet(bet models.DecimalBet) (models.FractionalBet, error) {
	fo, err := odds.DecimalToFraction(bet.Odds)
	if err != nil {
		return models.FractionalBet{}, fmt.Errorf("bet %d: %w", bet.BetID, err)
	}

	return models.FractionalBet{
		BetID: bet.BetID,
		Odds:  fo,
		Stake: bet.Stake,
	}, nil
}

// ToDecimalPlacedBet converts an upstream receipt into the client's shape.
// The odds are taken from the bet that was sent upstream, not from the receipt.
func ToDecimalPlacedBet(placed models.FractionalPlacedBet, sent models.FractionalOdds) (models.DecimalPlacedBet, error) {
	d, err := odds.FractionToDecimal(sent)
	if err != nil {
		return models.DecimalPlacedBet{}, fmt.Errorf("receipt for bet %d: %w", placed.BetID, err)
	}

	return models.DecimalPlacedBet{
		BetID:         placed.BetID,
		Event:         placed.Event,
		Name:          placed.Name,
		Odds:          models.NewDecimalOdds(d),
		Stake:         placed.Stake,
		TransactionID: placed.TransactionID,
	}, nil
}

// ToDecimalEvent converts a single upstream event
func ToDecimalEvent(event models.FractionalEvent) (models.DecimalEvent, error) {
	d, err := odds.FractionToDecimal(event.Odds)
	if err != nil {
		return models.DecimalEvent{}, fmt.Errorf("event %d: %w", event.BetID, err)
	}

	return models.DecimalEvent{
		BetID: event.BetID,
		Event: event.Event,
		Name:  event.Name,
		Odds:  models.NewDecimalOdds(d),
	}, nil
}

// ToDecimalEvents converts a listing, preserving order.
// The first event that fails aborts the whole listing.
func ToDecimalEvents(events []models.FractionalEvent) ([]models.DecimalEvent, error) {
	out := make([]models.DecimalEvent, 0, len(events))

	for i, event := range events {
		d, err := ToDecimalEvent(event)
		if err != nil {
			return nil, fmt.Errorf("listing index %d: %w", i, err)
		}
		out = append(out, d)
	}

	return out, nil
}
