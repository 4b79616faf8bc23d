// Package cache provides the review result cache. Identical requests within
// the TTL are answered from the cache instead of re-running the model call.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"sqlrecsys/server/internal/config"
	"sqlrecsys/server/internal/logging"
)

const keyPrefix = "schema_review:"

// Cache stores serialized review results by request fingerprint. A cache
// failure is never surfaced to the caller; Get degrades to a miss and Set to
// a no-op.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Close() error
}

// Key fingerprints a request payload. The payload must marshal
// deterministically; struct fields serialize in declaration order.
func Key(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		// Only non-marshalable types can fail here; review payloads are
		// plain strings and slices.
		return ""
	}
	sum := sha256.Sum256(data)
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Redis backs the cache with a RESP server.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *logging.Logger
}

// NewRedis connects to the cache server configured in cfg. The connection is
// verified eagerly so a bad address fails at startup rather than on the first
// review.
func NewRedis(ctx context.Context, cfg config.Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr,
		DB:       cfg.CacheDB,
		Password: cfg.CachePassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Redis{
		client: client,
		ttl:    cfg.CacheTTL,
		log:    logging.New("cache"),
	}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		r.log.Warnf("get %s: %v", key, err)
		return nil, false
	}
	return data, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	if key == "" {
		return
	}
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		r.log.Warnf("set %s: %v", key, err)
	}
}

func (r *Redis) Close() error { return r.client.Close() }

// Noop disables caching. Used when CACHE_ADDR is unset.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte)        {}
func (Noop) Close() error                               { return nil }
