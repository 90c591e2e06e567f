package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/hoopsclient/internal/model"
	"github.com/mcoot/hoopsclient/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultConfig().Namespace
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, sessionKey(s.cfg.Namespace, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrKeyNotFound
		}
		return "", err
	}
	return v, nil
}

// Set writes one session value. With a SessionTTL, the write also restarts the
// expiry of the other session keys so the record expires as a whole.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	ttl := s.cfg.SessionTTL
	if ttl <= 0 {
		return s.client.Set(ctx, sessionKey(s.cfg.Namespace, key), value, 0).Err()
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(s.cfg.Namespace, key), value, ttl)
		for _, other := range sessionKeys {
			if other != key {
				// No-op when the key is absent
				pipe.Expire(ctx, sessionKey(s.cfg.Namespace, other), ttl)
			}
		}
		return nil
	})
	return err
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, sessionKey(s.cfg.Namespace, key)).Err()
}
