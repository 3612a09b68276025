package service

//go:generate mockgen -source=upstream_interface.go -destination=../mocks/mock_upstream.go -package=mocks

import (
	"context"

	"github.com/cypherlabdev/odds-translation-proxy/internal/upstream"
)

// Upstream is an interface that abstracts the fractional-odds betting API
// This allows for easier testing and mocking
type Upstream interface {
	PlaceBet(ctx context.Context, body []byte) (*upstream.Response, error)
	AvailableEvents(ctx context.Context) (*upstream.Response, error)
}
