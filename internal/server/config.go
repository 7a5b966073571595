package server

import "time"

// Config holds server configuration
type Config struct {
	Port          string
	AllowedOrigin string        // CORS origin allowed to call the API
	SessionTTL    time.Duration // how long a generated password is kept for its session
}

// DefaultConfig returns the configuration used when no overrides are set
func DefaultConfig() *Config {
	return &Config{
		Port:          "3000",
		AllowedOrigin: "*",
		SessionTTL:    time.Hour,
	}
}
