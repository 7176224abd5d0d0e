package config

import "os"

// Config holds all application configuration.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Twilio   TwilioConfig
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Addr string // listen address, e.g. ":3000"
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path string // SQLite database file path
}

// RedisConfig contains cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr string
}

// TwilioConfig contains the SMS gateway credentials plus the fixed sender
// and operator numbers. All of it is optional: without credentials the
// server still starts and notifications become a logged no-op.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// Load reads configuration from environment variables with sensible
// defaults. Nothing here is required; the process must be able to start
// from a bare environment.
func Load() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr: ":" + getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "orders.db"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			From:       getEnv("TWILIO_FROM_NUMBER", ""),
			To:         getEnv("OWNER_PHONE_NUMBER", ""),
		},
	}
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
