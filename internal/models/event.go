package models

// FractionalEvent is one entry of the upstream's available events listing
type FractionalEvent struct {
	BetID int64          `json:"bet_id"`
	Event string         `json:"event"`
	Name  string         `json:"name"`
	Odds  FractionalOdds `json:"odds"`
}

// DecimalEvent is one entry of the listing returned to the client
type DecimalEvent struct {
	BetID int64       `json:"bet_id"`
	Event string      `json:"event"`
	Name  string      `json:"name"`
	Odds  DecimalOdds `json:"odds"`
}
