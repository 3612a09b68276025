package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
	"github.com/cypherlabdev/odds-translation-proxy/internal/service"
	"github.com/cypherlabdev/odds-translation-proxy/internal/upstream"
)

// ProxyHandler handles the decimal-odds client API
type ProxyHandler struct {
	service      *service.ProxyService
	maxBodyBytes int64
	logger       zerolog.Logger
}

// NewProxyHandler creates a new proxy HTTP handler
func NewProxyHandler(service *service.ProxyService, maxBodyBytes int64, logger zerolog.Logger) *ProxyHandler {
	return &ProxyHandler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
		logger:       logger.With().Str("component", "proxy_handler").Logger(),
	}
}

// Routes returns the client-facing routes
func (h *ProxyHandler) Routes() []Route {
	return []Route{
		// POST /bets - Place a bet with decimal odds
		{Method: http.MethodPost, Pattern: "/bets", Handler: http.HandlerFunc(h.handlePlaceBet)},
		// GET /available - List events with decimal odds
		{Method: http.MethodGet, Pattern: "/available", Handler: http.HandlerFunc(h.handleAvailable)},
	}
}

// NotImplemented answers every request no route matches
func (h *ProxyHandler) NotImplemented(w http.ResponseWriter, r *http.Request) {
	errorResponse(w, h.logger, http.StatusNotImplemented)
}

// handlePlaceBet handles POST /bets
func (h *ProxyHandler) handlePlaceBet(w http.ResponseWriter, r *http.Request) {
	bet, err := h.decodeBet(w, r)
	if err != nil {
		h.logger.Debug().Err(err).Msg("rejecting undecodable bet")
		errorResponse(w, h.logger, http.StatusBadRequest)
		return
	}

	result, err := h.service.PlaceBet(upstreamContext(r), bet)
	if err != nil {
		status := placeBetErrorStatus(err)
		h.logger.Warn().
			Err(err).
			Int64("bet_id", bet.BetID).
			Int("status", status).
			Msg("bet placement failed")
		errorResponse(w, h.logger, status)
		return
	}

	if result.Relay != nil {
		relayResponse(w, h.logger, result.Relay)
		return
	}

	jsonResponse(w, h.logger, http.StatusCreated, result.Receipt)
}

// handleAvailable handles GET /available
func (h *ProxyHandler) handleAvailable(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AvailableEvents(upstreamContext(r))
	if err != nil {
		status := availableErrorStatus(err)
		h.logger.Warn().
			Err(err).
			Int("status", status).
			Msg("events listing failed")
		errorResponse(w, h.logger, status)
		return
	}

	if result.Relay != nil {
		relayResponse(w, h.logger, result.Relay)
		return
	}

	prettyJSONResponse(w, h.logger, http.StatusOK, result.Events)
}

// decodeBet strictly decodes a single decimal bet from the request body
func (h *ProxyHandler) decodeBet(w http.ResponseWriter, r *http.Request) (models.DecimalBet, error) {
	var bet models.DecimalBet

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&bet); err != nil {
		return models.DecimalBet{}, fmt.Errorf("failed to decode bet: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.DecimalBet{}, errors.New("failed to decode bet: trailing data after JSON object")
	}

	return bet, nil
}

// placeBetErrorStatus maps service errors on POST /bets.
// An undecodable upstream receipt is reported like an undecodable request.
func placeBetErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidBet), errors.Is(err, service.ErrUpstreamPayload):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// availableErrorStatus maps service errors on GET /available
func availableErrorStatus(err error) int {
	if errors.Is(err, service.ErrUpstreamTimeout) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

// upstreamContext tags the request context with the request id for the upstream call
func upstreamContext(r *http.Request) context.Context {
	return upstream.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
}
