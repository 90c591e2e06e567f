package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hoopsclient/internal/session"
	"github.com/mcoot/hoopsclient/internal/storage"
	"github.com/mcoot/hoopsclient/internal/storage/file"
	"github.com/mcoot/hoopsclient/internal/storage/memory"
	redisstorage "github.com/mcoot/hoopsclient/internal/storage/redis"
	"github.com/mcoot/hoopsclient/internal/storage/sqlite"
	"github.com/mcoot/hoopsclient/internal/testutil"
)

func TestNewSelectsStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	tests := []struct {
		name   string
		cfg    Config
		assert func(t *testing.T, s storage.Storage)
	}{
		{
			name: "memory",
			cfg:  Config{StorageType: StorageTypeMemory},
			assert: func(t *testing.T, s storage.Storage) {
				assert.IsType(t, &memory.Storage{}, s)
			},
		},
		{
			name: "file",
			cfg:  Config{StorageType: StorageTypeFile, StoragePath: t.TempDir()},
			assert: func(t *testing.T, s storage.Storage) {
				assert.IsType(t, &file.Storage{}, s)
			},
		},
		{
			name: "sqlite directory",
			cfg:  Config{StorageType: StorageTypeSQLite, StoragePath: t.TempDir()},
			assert: func(t *testing.T, s storage.Storage) {
				assert.IsType(t, &sqlite.Storage{}, s)
			},
		},
		{
			name: "sqlite file",
			cfg:  Config{StorageType: StorageTypeSQLite, StoragePath: filepath.Join(t.TempDir(), "hoops.db")},
			assert: func(t *testing.T, s storage.Storage) {
				assert.IsType(t, &sqlite.Storage{}, s)
			},
		},
		{
			name: "redis",
			cfg:  Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg},
			assert: func(t *testing.T, s storage.Storage) {
				assert.IsType(t, &redisstorage.Storage{}, s)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.BaseURL = "http://localhost:8000"
			tt.cfg.Logger = testutil.NopLogger()

			app, err := New(context.Background(), tt.cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, app.Close()) }()

			tt.assert(t, app.Storage)
			assert.Equal(t, session.StatusAnonymous, app.Session.Get().Status())
			assert.Equal(t, "http://localhost:8000", app.API.BaseURL())
		})
	}
}

func TestNewRejectsBadStorage(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "tape"})
	assert.ErrorContains(t, err, "invalid StorageType")

	_, err = New(context.Background(), Config{StorageType: StorageTypeRedis})
	assert.ErrorContains(t, err, "RedisConfig required")
}

func TestNewRestoresPersistedSession(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeyToken, "tok123"))
	require.NoError(t, store.Set(ctx, storage.KeyUser, `{"id":"u1","username":"Bob","email":"a@b.com"}`))

	app, err := New(ctx, Config{StorageType: StorageTypeFile, StoragePath: dir, BaseURL: "http://localhost:8000"})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	state := app.Session.Get()
	assert.Equal(t, session.StatusAuthenticated, state.Status())
	assert.Equal(t, "tok123", state.Token)
	assert.Equal(t, "Bob", state.User.Username)
}
