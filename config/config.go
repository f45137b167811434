package config

import (
	"fmt"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	Auth      AuthConfig      `json:"auth"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectTimeout time.Duration `json:"connect_timeout" env:"DB_CONNECT_TIMEOUT" default:"30s"`
	// QueryTimeout bounds every store call made by a single request. The
	// search core treats an expired deadline as a client-retryable failure.
	QueryTimeout time.Duration `json:"query_timeout" env:"DB_QUERY_TIMEOUT" default:"10s"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" env:"RATE_LIMIT_RPS" default:"50"`
	Burst             int `json:"burst" env:"RATE_LIMIT_BURST" default:"100"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type AuthConfig struct {
	// TokenSecret verifies bearer tokens issued by the auth collaborator.
	// Token issuance, registration and password handling live outside this
	// service.
	TokenSecret string `json:"-" env:"AUTH_TOKEN_SECRET"`
	TokenIssuer string `json:"token_issuer" env:"AUTH_TOKEN_ISSUER"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("query timeout must be positive: %s", c.Database.QueryTimeout)
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit rps must be positive: %d", c.RateLimit.RequestsPerSecond)
	}

	return nil
}
