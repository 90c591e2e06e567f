package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SessionTTL expires persisted session keys; zero keeps them until logout
	SessionTTL time.Duration

	// Namespace separates sessions of different users sharing one Redis
	Namespace string
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     2,
		MinIdleConns: 0,
		SessionTTL:   0,
		Namespace:    "default",
	}
}
