// Package cache provides the location-data cache used by the BFF server.
// Entries are serialized JSON strings keyed by location; a Redis backend is
// used when an address is configured, an in-process TTL map otherwise.
package cache

import (
	"context"
	"time"
)

// Cache is a string key/value store with per-entry expiry.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
