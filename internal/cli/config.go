package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/hoopsclient/internal/factory"
	redisstorage "github.com/mcoot/hoopsclient/internal/storage/redis"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	// APIURL is the deployment-wide API base URL
	APIURL string `env:"PUBLIC_API_URL" envDefault:"http://localhost:8000"`
	// ServerURL overrides APIURL for this CLI
	ServerURL   string        `env:"HOOPS_SERVER"`
	Storage     string        `env:"HOOPS_STORAGE"      envDefault:"file"`
	StoragePath string        `env:"HOOPS_STORAGE_PATH"`
	RedisURL    string        `env:"HOOPS_REDIS_URL"`
	Output      string        `env:"HOOPS_OUTPUT"       envDefault:"text"`
	Timeout     time.Duration `env:"HOOPS_TIMEOUT"      envDefault:"30s"`
	Verbose     bool          `env:"HOOPS_VERBOSE"`
}

// LoadConfig reads .env (if present) and then the environment
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if c.ServerURL == "" {
		c.ServerURL = c.APIURL
	}
	return c, nil
}

// Validate checks values the flags cannot constrain
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q: must be 'text' or 'json'", c.Output)
	}
	if c.ServerURL == "" {
		return fmt.Errorf("no server URL: set --server, HOOPS_SERVER or PUBLIC_API_URL")
	}
	return nil
}

// Logger returns the CLI logger writing text records to w
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig converts c into the application factory's configuration
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		BaseURL:     c.ServerURL,
		Timeout:     c.Timeout,
		StorageType: c.Storage,
		StoragePath: c.StoragePath,
		Logger:      logger,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if c.RedisURL != "" {
			redisCfg.URL = c.RedisURL
		}
		fc.RedisConfig = &redisCfg
	}
	return fc
}
