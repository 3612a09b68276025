package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// PlaceBetPath is the upstream endpoint accepting fractional bets
	PlaceBetPath = "/bets"
	// AvailablePath is the upstream endpoint listing fractional events
	AvailablePath = "/available"

	// RequestIDHeader carries the proxy's request id to the upstream
	RequestIDHeader = "X-Request-Id"

	contentTypeJSON = "application/json; charset=utf-8"
)

// Response is a fully read upstream response
type Response struct {
	StatusCode int
	StatusText string
	Body       []byte
}

// ClientConfig holds upstream client configuration
type ClientConfig struct {
	BaseURL         string        // e.g., "http://skybettechtestapi.herokuapp.com"
	Timeout         time.Duration // 0 waits indefinitely
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

// Client talks to the fractional-odds betting API
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a new upstream client
func NewClient(config ClientConfig, logger zerolog.Logger) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConns,
		IdleConnTimeout:     config.IdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		logger:  logger.With().Str("component", "upstream_client").Logger(),
	}
}

// PlaceBet posts a serialised fractional bet
func (c *Client) PlaceBet(ctx context.Context, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PlaceBetPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build place bet request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	return c.do(req)
}

// AvailableEvents fetches the fractional events listing
func (c *Client) AvailableEvents(ctx context.Context) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+AvailablePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build available events request: %w", err)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	req.Header.Set("Accept", "application/json")
	if id, ok := req.Context().Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read body: %w", req.Method, req.URL.Path, err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", res.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("upstream call complete")

	return &Response{
		StatusCode: res.StatusCode,
		StatusText: statusText(res),
		Body:       body,
	}, nil
}

// statusText extracts the reason phrase from a status line such as "418 I'm a teapot"
func statusText(res *http.Response) string {
	text := strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		return http.StatusText(res.StatusCode)
	}
	return text
}

// IsTimeout reports whether err is the result of the client timeout or a context deadline
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

type requestIDKey struct{}

// WithRequestID returns a context whose upstream calls carry the given request id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
