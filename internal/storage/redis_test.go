package storage

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *mr.Miniredis) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	return NewRedisStore(client, "test:auth:", ttl), m
}

func TestRedisStore_SetGetRemove(t *testing.T) {
	rs, _ := newRedisStore(t, 0)
	ctx := context.Background()

	require.True(t, rs.Set(ctx, KeyToken, "t1"))
	v, ok := rs.Get(ctx, KeyToken)
	require.True(t, ok)
	require.Equal(t, "t1", v)

	require.True(t, rs.Remove(ctx, KeyToken))
	_, ok = rs.Get(ctx, KeyToken)
	require.False(t, ok)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	rs, m := newRedisStore(t, time.Second)
	ctx := context.Background()

	require.True(t, rs.Set(ctx, KeyToken, "t1"))
	_, ok := rs.Get(ctx, KeyToken)
	require.True(t, ok)

	m.FastForward(2 * time.Second)

	_, ok = rs.Get(ctx, KeyToken)
	require.False(t, ok)
}

func TestRedisStore_NormalizesSentinelValues(t *testing.T) {
	rs, m := newRedisStore(t, 0)

	require.NoError(t, m.Set("test:auth:"+KeyUser, "null"))
	_, ok := rs.Get(context.Background(), KeyUser)
	require.False(t, ok)
}

func TestRedisStore_DownServerDegradesToAbsent(t *testing.T) {
	rs, m := newRedisStore(t, 0)
	m.Close()

	ctx := context.Background()
	_, ok := rs.Get(ctx, KeyToken)
	require.False(t, ok)
	require.False(t, rs.Set(ctx, KeyToken, "t1"))
	require.False(t, rs.Remove(ctx, KeyToken))
}
