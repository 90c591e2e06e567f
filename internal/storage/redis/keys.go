package redis

import (
	"fmt"

	"github.com/mcoot/hoopsclient/internal/storage"
)

// Key prefix for all client session data
const keyPrefix = "hoops"

// sessionKey returns the Redis key for a persisted session value
func sessionKey(namespace, key string) string {
	return fmt.Sprintf("%s:session:%s:%s", keyPrefix, namespace, key)
}

// sessionKeys make up one persisted session and share its expiry
var sessionKeys = []string{storage.KeyToken, storage.KeyUser}
