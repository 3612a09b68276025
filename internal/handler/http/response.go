package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
	"github.com/cypherlabdev/odds-translation-proxy/internal/upstream"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"

	// UpstreamStatusHeader carries the upstream's status line on relayed responses
	UpstreamStatusHeader = "X-Upstream-Status"
)

// jsonResponse writes a compact JSON response
func jsonResponse(w http.ResponseWriter, logger zerolog.Logger, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorPayload(status))
	}
	write(w, logger, status, body)
}

// prettyJSONResponse writes an indented JSON response
func prettyJSONResponse(w http.ResponseWriter, logger zerolog.Logger, status int, data interface{}) {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorPayload(status))
	}
	write(w, logger, status, body)
}

// errorResponse writes the canonical error payload for status
func errorResponse(w http.ResponseWriter, logger zerolog.Logger, status int) {
	jsonResponse(w, logger, status, errorPayload(status))
}

// relayResponse passes an upstream response through unchanged
func relayResponse(w http.ResponseWriter, logger zerolog.Logger, res *upstream.Response) {
	w.Header().Set(UpstreamStatusHeader, fmt.Sprintf("%d %s", res.StatusCode, res.StatusText))
	write(w, logger, res.StatusCode, res.Body)
}

func errorPayload(status int) models.ErrorPayload {
	return models.ErrorPayload{
		ErrorCode:    status,
		ErrorMessage: http.StatusText(status),
	}
}

func write(w http.ResponseWriter, logger zerolog.Logger, status int, body []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debug().Err(err).Msg("failed to write response body")
	}
}
