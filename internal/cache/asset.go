// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// asset.go provides a Valkey-backed cache of resolved media descriptors.
// Minting a download URL means listing a storage folder and probing paths,
// so a resolved descriptor is kept for a bounded freshness window rather
// than re-resolved on every request. The underlying URLs live far longer
// than the TTL, so staleness here only delays seeing a replaced file.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// assetKeyPrefix namespaces descriptor keys in Valkey.
	assetKeyPrefix = "asset:"

	// DefaultAssetTTL is how long a resolved descriptor stays cached.
	DefaultAssetTTL = time.Hour
)

// AssetCache manages resolved media descriptors in Valkey. Values are the
// JSON encoding produced by the content resolution layer; this cache does
// not interpret them.
type AssetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssetCache creates a descriptor cache backed by the given Valkey client.
func NewAssetCache(client *redis.Client, ttl time.Duration) *AssetCache {
	if ttl == 0 {
		ttl = DefaultAssetTTL
	}
	return &AssetCache{client: client, ttl: ttl}
}

// Get retrieves a cached descriptor by asset id. Returns (nil, false) on
// miss; cache errors degrade to a miss and are logged, never surfaced.
func (ac *AssetCache) Get(ctx context.Context, id string) ([]byte, bool) {
	val, err := ac.client.Get(ctx, assetKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("asset cache get error", "id", id, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a resolved descriptor with the configured TTL.
func (ac *AssetCache) Set(ctx context.Context, id string, payload []byte) {
	if err := ac.client.Set(ctx, assetKeyPrefix+id, payload, ac.ttl).Err(); err != nil {
		slog.Warn("asset cache set error", "id", id, "error", err)
	}
}

// Invalidate removes a single descriptor, forcing the next resolution to
// hit the object store. Called after a successful upload.
func (ac *AssetCache) Invalidate(ctx context.Context, id string) {
	if err := ac.client.Del(ctx, assetKeyPrefix+id).Err(); err != nil {
		slog.Warn("asset cache invalidate error", "id", id, "error", err)
	}
	slog.Debug("asset cache invalidated", "id", id)
}

// InvalidateAll removes every cached descriptor by scanning for the prefix.
func (ac *AssetCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := ac.client.Scan(ctx, cursor, assetKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("asset cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := ac.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("asset cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("asset cache fully cleared", "deleted", deleted)
	}
}
