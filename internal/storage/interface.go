package storage

import (
	"context"
)

// Keys under which the session record is persisted
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// Storage is a durable string key-value store for client-side state.
// Get returns model.ErrKeyNotFound for absent keys; Delete of an absent key is not an error.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
