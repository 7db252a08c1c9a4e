package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
	HTTP       HTTPConfig       `mapstructure:"http"       validate:"required"`
}

// ServerConfig contains listener and logging settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// PublicURL prefixes every link the API emits. Empty yields path-relative links.
	PublicURL string `mapstructure:"public_url" validate:"omitempty,url"`
}

// DatabaseConfig contains the connection string and pool sizing.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0,ltefield=MaxOpenConns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
}

// ConnMaxLifetime returns the pool connection lifetime as a duration.
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeMinutes) * time.Minute
}

// PaginationConfig controls the page window accepted by list endpoints.
type PaginationConfig struct {
	PageSize        int  `mapstructure:"page_size"          validate:"gte=1"`
	LimitToPageSize bool `mapstructure:"limit_to_page_size"`
}

// HTTPConfig contains the cross-cutting HTTP middleware settings.
type HTTPConfig struct {
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
	RateLimitRequests      int      `mapstructure:"rate_limit_requests"       validate:"gte=0"`
	RateLimitWindowSeconds int      `mapstructure:"rate_limit_window_seconds" validate:"gte=1"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds"  validate:"gte=1"`
}

// RateLimitWindow returns the rate limiting window as a duration.
func (c HTTPConfig) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown budget as a duration.
func (c HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
