package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Redis    RedisConfig    `mapstructure:"redis"    validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CookieSecure controls the Secure attribute on the session cookie.
	// Disabled by default so local HTTP development works; production
	// deployments must enable it.
	CookieSecure bool `mapstructure:"cookie_secure"`
}

// DatabaseConfig contains all relational store settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// RedisConfig contains all session cache settings.
type RedisConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and session settings.
type AuthConfig struct {
	// TokenSecret signs session tokens. Never hardcode it; inject via
	// TASKVAULT_AUTH_TOKEN_SECRET.
	TokenSecret string `mapstructure:"token_secret" validate:"required,min=32"`

	// SessionTTLSeconds is the lifetime of a session cache entry. Tokens do
	// not embed an expiry; this TTL is the only expiry mechanism.
	SessionTTLSeconds int `mapstructure:"session_ttl_seconds" validate:"required,gt=0"`
}
