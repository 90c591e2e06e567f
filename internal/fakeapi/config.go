// Package fakeapi serves a local stand-in for the fantasy-basketball API.
package fakeapi

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the fake API's environment configuration
type Config struct {
	Host            string        `env:"FAKEAPI_HOST"`
	Port            int           `env:"FAKEAPI_PORT"              envDefault:"8000"`
	Secret          string        `env:"FAKEAPI_SECRET"            envDefault:"dev-secret-change-me"`
	TokenTTL        time.Duration `env:"FAKEAPI_TOKEN_TTL"         envDefault:"24h"`
	TokenOnRegister bool          `env:"FAKEAPI_TOKEN_ON_REGISTER" envDefault:"true"`
	EnableDev       bool          `env:"FAKEAPI_ENABLE_DEV"        envDefault:"true"`
	LogLevel        string        `env:"FAKEAPI_LOG_LEVEL"         envDefault:"info"`
}

// LoadConfig reads .env (if present) and then the environment
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ServerConfig returns the HTTP server settings for cfg
func (c Config) ServerConfig() ServerConfig {
	sc := DefaultServerConfig()
	sc.Host = c.Host
	if c.Port != 0 {
		sc.Port = c.Port
	}
	return sc
}
