package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/cypherlabdev/odds-translation-proxy/internal/cache"
	"github.com/cypherlabdev/odds-translation-proxy/internal/config"
	httpHandler "github.com/cypherlabdev/odds-translation-proxy/internal/handler/http"
	"github.com/cypherlabdev/odds-translation-proxy/internal/messaging"
	"github.com/cypherlabdev/odds-translation-proxy/internal/metrics"
	"github.com/cypherlabdev/odds-translation-proxy/internal/service"
	"github.com/cypherlabdev/odds-translation-proxy/internal/upstream"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := pflag.String("config", "", "path to a YAML config file")
	pflag.Parse()

	// A missing .env is fine; the environment may be set directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting odds-translation-proxy")

	m := metrics.New()

	// Create upstream client
	client := upstream.NewClient(
		upstream.ClientConfig{
			BaseURL:         cfg.Upstream.BaseURL,
			Timeout:         cfg.Upstream.Timeout,
			MaxIdleConns:    cfg.Upstream.MaxIdleConns,
			IdleConnTimeout: cfg.Upstream.IdleConnTimeout,
		},
		logger,
	)
	logger.Info().
		Str("base_url", cfg.Upstream.BaseURL).
		Dur("timeout", cfg.Upstream.Timeout).
		Msg("upstream client initialized")

	// Optional Redis listing cache
	var eventsCache service.EventsCache
	if cfg.CacheEnabled() {
		redisCache := cache.NewRedisCache(
			cache.RedisCacheConfig{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
				TTL:      cfg.Redis.TTL,
			},
			logger,
		)
		defer redisCache.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			// The cache is best effort; readiness reports it until Redis answers
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis not reachable yet")
		} else {
			logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
		}
		pingCancel()

		eventsCache = redisCache
	}

	// Optional Kafka receipt publisher
	var publisher service.ReceiptPublisher
	if cfg.PublishingEnabled() {
		kafkaPublisher := messaging.NewKafkaPublisher(
			messaging.KafkaPublisherConfig{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.Topic,
			},
			logger,
		)
		defer kafkaPublisher.Close()

		logger.Info().
			Strs("brokers", cfg.Kafka.Brokers).
			Str("topic", cfg.Kafka.Topic).
			Msg("receipt publisher initialized")

		publisher = kafkaPublisher
	}

	// Create proxy service layer
	proxyService := service.NewProxyService(client, eventsCache, publisher, m, logger)

	// Initialize HTTP handler
	proxyHandler := httpHandler.NewProxyHandler(proxyService, cfg.Server.MaxBodyBytes, logger)

	routes := append(proxyHandler.Routes(), httpHandler.OpsRoutes(proxyService.Ready, m)...)
	router := httpHandler.NewRouter(
		routes,
		proxyHandler.NotImplemented,
		httpHandler.RouterConfig{AllowedOrigins: cfg.Server.CORSAllowedOrigins},
		m,
		logger,
	)
	logger.Info().Int("routes", len(routes)).Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("shutting down gracefully...")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("HTTP server failed")
	}

	// Drain in-flight requests
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "odds-translation-proxy").Logger()
}
