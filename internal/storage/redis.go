package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/logger"
)

// RedisStore keeps the session record in Redis under "<prefix><key>". Used
// when the client runs as a shared kiosk frontend and sessions should
// survive host restarts. Prefix may be empty.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store. A non-zero ttl bounds how long
// entries linger; the manager still applies its own expiry rule on read.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "pharmadesk:auth:"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(k string) string {
	return r.prefix + k
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warnf("redis get %q failed: %v", key, err)
		}
		return "", false
	}
	if !ValidValue(v) {
		return "", false
	}
	return v, true
}

func (r *RedisStore) Set(ctx context.Context, key, value string) bool {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		logger.Warnf("redis set %q failed: %v", key, err)
		return false
	}
	return true
}

func (r *RedisStore) Remove(ctx context.Context, key string) bool {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		logger.Warnf("redis del %q failed: %v", key, err)
		return false
	}
	return true
}
