package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-translation-proxy/internal/metrics"
)

// Route maps a method and path to a handler
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

// RouterConfig holds router configuration
type RouterConfig struct {
	AllowedOrigins []string // empty disables CORS
}

// NewRouter builds a router from an explicit route table.
// Requests matching no route, or a route with another method, go to fallback.
func NewRouter(routes []Route, fallback http.HandlerFunc, config RouterConfig, m *metrics.Metrics, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger.With().Str("component", "router").Logger(), m))
	r.Use(middleware.Recoverer)

	if len(config.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: config.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id", UpstreamStatusHeader},
			MaxAge:         300,
		}))
	}

	for _, route := range routes {
		r.Method(route.Method, route.Pattern, route.Handler)
	}

	r.NotFound(fallback)
	r.MethodNotAllowed(fallback)

	return r
}

// OpsRoutes returns the health, readiness and metrics routes
func OpsRoutes(ready func(ctx context.Context) error, m *metrics.Metrics) []Route {
	routes := []Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: http.HandlerFunc(healthHandler)},
		{Method: http.MethodGet, Pattern: "/ready", Handler: readyHandler(ready)},
	}
	if m != nil {
		routes = append(routes, Route{Method: http.MethodGet, Pattern: "/metrics", Handler: m.Handler()})
	}
	return routes
}

// healthHandler returns 200 if the process is serving
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 once the proxy's dependencies answer
func readyHandler(ready func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ready(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
