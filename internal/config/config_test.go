package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes content to a temporary YAML file and returns its path
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

// TestLoadConfig_Defaults tests loading configuration with default values
func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server defaults
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, time.Duration(0), config.Server.WriteTimeout)
	assert.Equal(t, int64(1<<20), config.Server.MaxBodyBytes)
	assert.Empty(t, config.Server.CORSAllowedOrigins)

	// Verify upstream defaults
	assert.Equal(t, "http://skybettechtestapi.herokuapp.com", config.Upstream.BaseURL)
	assert.Equal(t, time.Duration(0), config.Upstream.Timeout)
	assert.Equal(t, 100, config.Upstream.MaxIdleConns)
	assert.Equal(t, 90*time.Second, config.Upstream.IdleConnTimeout)

	// Verify Redis defaults
	assert.Equal(t, "", config.Redis.Addr)
	assert.Equal(t, 0, config.Redis.DB)
	assert.Equal(t, 30*time.Second, config.Redis.TTL)
	assert.False(t, config.CacheEnabled())

	// Verify Kafka defaults
	assert.Empty(t, config.Kafka.Brokers)
	assert.Equal(t, "bet_receipts", config.Kafka.Topic)
	assert.False(t, config.PublishingEnabled())

	// Verify logging defaults
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

// TestLoadConfig_WithFile tests loading configuration from file
func TestLoadConfig_WithFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  read_timeout: 45s
  write_timeout: 60s
  max_body_bytes: 4096
  cors_allowed_origins:
    - http://localhost:3000

upstream:
  base_url: http://upstream.internal
  timeout: 5s
  max_idle_conns: 20
  idle_conn_timeout: 15s

redis:
  addr: redis:6379
  password: test_password
  db: 1
  ttl: 1m

kafka:
  brokers:
    - broker1:9092
    - broker2:9092
  topic: test_receipts

logging:
  level: debug
  format: console
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 45*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, config.Server.WriteTimeout)
	assert.Equal(t, int64(4096), config.Server.MaxBodyBytes)
	assert.Equal(t, []string{"http://localhost:3000"}, config.Server.CORSAllowedOrigins)

	assert.Equal(t, "http://upstream.internal", config.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, config.Upstream.Timeout)
	assert.Equal(t, 20, config.Upstream.MaxIdleConns)
	assert.Equal(t, 15*time.Second, config.Upstream.IdleConnTimeout)

	assert.Equal(t, "redis:6379", config.Redis.Addr)
	assert.Equal(t, "test_password", config.Redis.Password)
	assert.Equal(t, 1, config.Redis.DB)
	assert.Equal(t, time.Minute, config.Redis.TTL)
	assert.True(t, config.CacheEnabled())

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "test_receipts", config.Kafka.Topic)
	assert.True(t, config.PublishingEnabled())

	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
}

// TestLoadConfig_InvalidFile tests loading with non-existent file
func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_MalformedFile tests loading with values of the wrong type
func TestLoadConfig_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: invalid_port
  read_timeout: not_a_duration
`)

	config, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_PartialFile tests loading with partial configuration
func TestLoadConfig_PartialFile(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  timeout: 2s

# Other configs will use defaults
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 2*time.Second, config.Upstream.Timeout)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "http://skybettechtestapi.herokuapp.com", config.Upstream.BaseURL)
	assert.Equal(t, "bet_receipts", config.Kafka.Topic)
}

// TestLoadConfig_EnvironmentVariables tests environment variable overrides
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("ODDS_PROXY_SERVER_PORT", "7777")
	t.Setenv("ODDS_PROXY_UPSTREAM_BASE_URL", "http://env-upstream")
	t.Setenv("ODDS_PROXY_UPSTREAM_TIMEOUT", "3s")
	t.Setenv("ODDS_PROXY_REDIS_ADDR", "env-redis:6379")

	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 7777, config.Server.Port)
	assert.Equal(t, "http://env-upstream", config.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, config.Upstream.Timeout)
	assert.Equal(t, "env-redis:6379", config.Redis.Addr)
}

// TestLoadConfig_ValidationFailure tests that invalid values are rejected after loading
func TestLoadConfig_ValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  timeout: -1s
`)

	config, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestValidate tests configuration validation
func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: 8080, MaxBodyBytes: 1024},
			Upstream: UpstreamConfig{BaseURL: "http://upstream"},
			Kafka:    KafkaConfig{Topic: "bet_receipts"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "Zero port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "Port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "Missing upstream", mutate: func(c *Config) { c.Upstream.BaseURL = "" }, wantErr: true},
		{name: "Negative timeout", mutate: func(c *Config) { c.Upstream.Timeout = -time.Second }, wantErr: true},
		{name: "Zero body limit", mutate: func(c *Config) { c.Server.MaxBodyBytes = 0 }, wantErr: true},
		{
			name: "Brokers without topic",
			mutate: func(c *Config) {
				c.Kafka.Brokers = []string{"localhost:9092"}
				c.Kafka.Topic = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
