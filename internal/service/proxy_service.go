package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-translation-proxy/internal/metrics"
	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
	"github.com/cypherlabdev/odds-translation-proxy/internal/translate"
	"github.com/cypherlabdev/odds-translation-proxy/internal/upstream"
)

var (
	// ErrInvalidBet means the client's bet could not be translated
	ErrInvalidBet = errors.New("invalid bet")
	// ErrUpstreamPayload means the upstream answered with a success status but an unusable body
	ErrUpstreamPayload = errors.New("undecodable upstream payload")
	// ErrUpstreamUnavailable means the upstream could not be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamTimeout means the configured upstream timeout elapsed
	ErrUpstreamTimeout = errors.New("upstream timeout")
)

const (
	endpointPlaceBet  = "place_bet"
	endpointAvailable = "available"

	directionToFraction = "decimal_to_fraction"
	directionToDecimal  = "fraction_to_decimal"
)

// PlaceBetResult is either a translated receipt or an upstream response to relay verbatim
type PlaceBetResult struct {
	Receipt *models.DecimalPlacedBet
	Relay   *upstream.Response
}

// ListingResult is either a translated events listing or an upstream response to relay verbatim
type ListingResult struct {
	Events []models.DecimalEvent
	Relay  *upstream.Response
}

// ProxyService translates bets and listings between the client and the upstream
type ProxyService struct {
	upstream  Upstream
	cache     EventsCache
	publisher ReceiptPublisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewProxyService creates a new proxy service.
// cache, publisher and m may be nil.
func NewProxyService(
	upstream Upstream,
	cache EventsCache,
	publisher ReceiptPublisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ProxyService {
	return &ProxyService{
		upstream:  upstream,
		cache:     cache,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With().Str("component", "proxy_service").Logger(),
	}
}

// PlaceBet converts a decimal bet, forwards it upstream and converts the receipt back.
// A non-201 upstream answer is returned for relay rather than as an error.
func (s *ProxyService) PlaceBet(ctx context.Context, bet models.DecimalBet) (*PlaceBetResult, error) {
	fractional, err := translate.ToFractionalBet(bet)
	if err != nil {
		s.metrics.ConversionFailure(directionToFraction)
		return nil, fmt.Errorf("%w: %w", ErrInvalidBet, err)
	}

	body, err := json.Marshal(fractional)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal bet: %w", ErrInvalidBet, err)
	}

	res, err := s.call(ctx, endpointPlaceBet, func(ctx context.Context) (*upstream.Response, error) {
		return s.upstream.PlaceBet(ctx, body)
	})
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusCreated {
		s.logger.Info().
			Int64("bet_id", bet.BetID).
			Int("status", res.StatusCode).
			Str("status_text", res.StatusText).
			Msg("relaying upstream bet rejection")
		return &PlaceBetResult{Relay: res}, nil
	}

	var placed models.FractionalPlacedBet
	if err := json.Unmarshal(res.Body, &placed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamPayload, err)
	}

	receipt, err := translate.ToDecimalPlacedBet(placed, fractional.Odds)
	if err != nil {
		s.metrics.ConversionFailure(directionToDecimal)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamPayload, err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReceipt(ctx, receipt, fractional.Odds); err != nil {
			s.logger.Warn().
				Err(err).
				Int64("bet_id", receipt.BetID).
				Int64("transaction_id", receipt.TransactionID).
				Msg("failed to publish bet receipt")
			// Don't fail the request on publish errors
		}
	}

	s.logger.Info().
		Int64("bet_id", receipt.BetID).
		Int64("transaction_id", receipt.TransactionID).
		Str("odds", receipt.Odds.String()).
		Int64("numerator", fractional.Odds.Numerator).
		Int64("denominator", fractional.Odds.Denominator).
		Int("stake", receipt.Stake).
		Msg("bet placed")

	return &PlaceBetResult{Receipt: &receipt}, nil
}

// AvailableEvents fetches the upstream listing and converts every event's odds to decimal.
// A non-200 upstream answer is returned for relay rather than as an error.
func (s *ProxyService) AvailableEvents(ctx context.Context) (*ListingResult, error) {
	if events, ok := s.cachedListing(ctx); ok {
		return &ListingResult{Events: events}, nil
	}

	res, err := s.call(ctx, endpointAvailable, s.upstream.AvailableEvents)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		s.logger.Warn().
			Int("status", res.StatusCode).
			Str("status_text", res.StatusText).
			Msg("relaying upstream listing failure")
		return &ListingResult{Relay: res}, nil
	}

	events, err := s.decodeListing(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamPayload, err)
	}

	if s.cache != nil {
		if err := s.cache.SetAvailable(ctx, res.Body); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache events listing")
			// Don't fail the request on cache errors
		}
	}

	s.logger.Debug().
		Int("count", len(events)).
		Msg("translated events listing")

	return &ListingResult{Events: events}, nil
}

// Ready reports whether optional dependencies answer
func (s *ProxyService) Ready(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Ping(ctx); err != nil {
		return fmt.Errorf("events cache: %w", err)
	}
	return nil
}

// cachedListing serves the listing from cache; any cache problem is a miss
func (s *ProxyService) cachedListing(ctx context.Context) ([]models.DecimalEvent, bool) {
	if s.cache == nil {
		return nil, false
	}

	body, ok, err := s.cache.GetAvailable(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cache error, fetching listing from upstream")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	events, err := s.decodeListing(body)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding unusable cached listing")
		return nil, false
	}

	s.logger.Debug().Int("count", len(events)).Msg("cache hit for events listing")
	return events, true
}

func (s *ProxyService) decodeListing(body []byte) ([]models.DecimalEvent, error) {
	var fractional []models.FractionalEvent
	if err := json.Unmarshal(body, &fractional); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}

	events, err := translate.ToDecimalEvents(fractional)
	if err != nil {
		s.metrics.ConversionFailure(directionToDecimal)
		return nil, err
	}
	return events, nil
}

// call runs one upstream request, records it and classifies transport failures
func (s *ProxyService) call(
	ctx context.Context,
	endpoint string,
	fn func(context.Context) (*upstream.Response, error),
) (*upstream.Response, error) {
	start := time.Now()
	res, err := fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		outcome, sentinel := "error", ErrUpstreamUnavailable
		if upstream.IsTimeout(err) {
			outcome, sentinel = "timeout", ErrUpstreamTimeout
		}
		s.metrics.ObserveUpstream(endpoint, outcome, elapsed)
		s.logger.Error().
			Err(err).
			Str("endpoint", endpoint).
			Dur("elapsed", elapsed).
			Msg("upstream call failed")
		return nil, fmt.Errorf("%w: %w", sentinel, err)
	}

	s.metrics.ObserveUpstream(endpoint, strconv.Itoa(res.StatusCode), elapsed)
	return res, nil
}
