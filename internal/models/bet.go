package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DecimalBet is a bet request as sent by the client.
// Odds is a NullDecimal so that a missing or null odds field is distinguishable from zero.
type DecimalBet struct {
	BetID int64               `json:"bet_id"`
	Odds  decimal.NullDecimal `json:"odds"`
	Stake int                 `json:"stake"`
}

// FractionalBet is a bet request in the upstream's shape
type FractionalBet struct {
	BetID int64          `json:"bet_id"`
	Odds  FractionalOdds `json:"odds"`
	Stake int            `json:"stake"`
}

// FractionalPlacedBet is the receipt returned by the upstream on 201 Created
type FractionalPlacedBet struct {
	BetID         int64          `json:"bet_id"`
	Event         string         `json:"event"`
	Name          string         `json:"name"`
	Odds          FractionalOdds `json:"odds"`
	Stake         int            `json:"stake"`
	TransactionID int64          `json:"transaction_id"`
}

// DecimalPlacedBet is the receipt returned to the client
type DecimalPlacedBet struct {
	BetID         int64       `json:"bet_id"`
	Event         string      `json:"event"`
	Name          string      `json:"name"`
	Odds          DecimalOdds `json:"odds"`
	Stake         int         `json:"stake"`
	TransactionID int64       `json:"transaction_id"`
}

// BetPlacedEvent is published to Kafka for every receipt handed back to a client
type BetPlacedEvent struct {
	ID             uuid.UUID      `json:"id"`
	BetID          int64          `json:"bet_id"`
	TransactionID  int64          `json:"transaction_id"`
	Event          string         `json:"event"`
	Name           string         `json:"name"`
	Odds           DecimalOdds    `json:"odds"`
	FractionalOdds FractionalOdds `json:"fractional_odds"`
	Stake          int            `json:"stake"`
	PlacedAt       time.Time      `json:"placed_at"`
}
