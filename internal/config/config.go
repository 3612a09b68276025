package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for odds-translation-proxy
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               int
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"` // 0 = no limit
	MaxBodyBytes       int64         `mapstructure:"max_body_bytes"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"` // empty disables CORS
}

// UpstreamConfig holds the fractional-odds API configuration
type UpstreamConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration // 0 = wait indefinitely
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout"`
}

// RedisConfig holds Redis configuration for the events listing cache
type RedisConfig struct {
	Addr     string // empty disables the cache
	Password string
	DB       int
	TTL      time.Duration
}

// KafkaConfig holds Kafka configuration for receipt publishing
type KafkaConfig struct {
	Brokers []string // empty disables publishing
	Topic   string   // Topic to publish placed-bet receipts to
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", time.Duration(0))
	v.SetDefault("server.max_body_bytes", int64(1<<20))
	v.SetDefault("server.cors_allowed_origins", []string{})

	v.SetDefault("upstream.base_url", "http://skybettechtestapi.herokuapp.com")
	v.SetDefault("upstream.timeout", time.Duration(0))
	v.SetDefault("upstream.max_idle_conns", 100)
	v.SetDefault("upstream.idle_conn_timeout", 90*time.Second)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "bet_receipts")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("ODDS_PROXY")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations the proxy cannot run with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("invalid upstream.timeout: %s", c.Upstream.Timeout)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid server.max_body_bytes: %d", c.Server.MaxBodyBytes)
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}
	return nil
}

// CacheEnabled reports whether the events listing cache is configured
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

// PublishingEnabled reports whether receipt publishing is configured
func (c *Config) PublishingEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
