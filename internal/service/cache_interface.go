package service

//go:generate mockgen -source=cache_interface.go -destination=../mocks/mock_cache.go -package=mocks

import (
	"context"
)

// EventsCache is an interface that abstracts caching of the upstream events listing
// This allows for easier testing and mocking
type EventsCache interface {
	// GetAvailable returns the cached upstream listing body and whether it was present
	GetAvailable(ctx context.Context) ([]byte, bool, error)
	SetAvailable(ctx context.Context, body []byte) error
	Ping(ctx context.Context) error
}
