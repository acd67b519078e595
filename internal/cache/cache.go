// Package cache provides TTL-based storage for computed reports. The
// memory backend is the default; a Redis backend is available for
// deployments that share reports across processes.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Store holds serialized report payloads keyed by report parameters.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key builds the cache key for a report request. The same parameters
// always produce the same key.
func Key(kind, startDate, endDate string, groupID, agentID int64) string {
	return fmt.Sprintf("report:%s:%s:%s:%s:%s",
		kind, startDate, endDate,
		strconv.FormatInt(groupID, 10),
		strconv.FormatInt(agentID, 10))
}
