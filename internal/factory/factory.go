package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/mcoot/hoopsclient/internal/client"
	"github.com/mcoot/hoopsclient/internal/dependencies/clock"
	"github.com/mcoot/hoopsclient/internal/navigation"
	"github.com/mcoot/hoopsclient/internal/session"
	"github.com/mcoot/hoopsclient/internal/storage"
	"github.com/mcoot/hoopsclient/internal/storage/file"
	"github.com/mcoot/hoopsclient/internal/storage/memory"
	redisstorage "github.com/mcoot/hoopsclient/internal/storage/redis"
	"github.com/mcoot/hoopsclient/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// sqliteFileName is used when StoragePath names a directory for the sqlite backend
const sqliteFileName = "session.db"

// App contains all wired client components
type App struct {
	// Storage persists the session record
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Session owns the authentication state
	Session *session.Store
	// Auth calls the authentication endpoints without a token
	Auth *client.AuthAPI
	// API is the authenticated client for every other endpoint
	API *client.Client

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// BaseURL is the remote API base URL
	BaseURL string
	// Timeout bounds each HTTP request; zero uses client.DefaultTimeout
	Timeout time.Duration
	// HTTPClient overrides the HTTP client (optional)
	HTTPClient *http.Client
	// StorageType selects the persistence backend ("file", "memory", "redis" or "sqlite")
	// If empty, defaults to "file"
	StorageType string
	// StoragePath is the directory for the file backend or the database path for
	// sqlite. If empty, file.DefaultDir() is used.
	StoragePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Navigator receives route changes (optional)
	// If nil, navigations are logged
	Navigator navigation.Navigator
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates the client application and restores any persisted session
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, closer, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app, err := newWithDependencies(ctx, store, clock.New(), cfg, logger)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	return app, nil
}

// newStorage creates the configured persistence backend
func newStorage(ctx context.Context, cfg Config) (storage.Storage, io.Closer, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	dir := cfg.StoragePath
	if dir == "" {
		dir = file.DefaultDir()
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil, nil
	case StorageTypeFile:
		return file.New(dir), nil, nil
	case StorageTypeSQLite:
		path := dir
		if cfg.StoragePath == "" || filepath.Ext(path) == "" {
			path = filepath.Join(dir, sqliteFileName)
		}
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		rdb, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return rdb, rdb, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be 'file', 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(ctx context.Context, store storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) (*App, error) {
	clientCfg := client.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		HTTPClient: cfg.HTTPClient,
		Logger:     logger,
	}

	// The auth endpoints run before there is a token, so they use an anonymous
	// client; the session store then backs the authenticated one.
	auth := client.NewAuthAPI(client.New(clientCfg, nil))

	sess, err := session.Open(ctx, session.Config{
		Storage:   store,
		Auth:      auth,
		Navigator: cfg.Navigator,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &App{
		Storage: store,
		Clock:   clk,
		Session: sess,
		Auth:    auth,
		API:     client.New(clientCfg, sess),
	}, nil
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
