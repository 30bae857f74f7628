package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisTest(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisClientFromClient(client), mr
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	rc, _ := setupRedisTest(t)
	ctx := context.Background()

	err := rc.Set(ctx, "wallet:test", "10.5", time.Minute)
	assert.NoError(t, err)

	val, err := rc.Get(ctx, "wallet:test")
	assert.NoError(t, err)
	assert.Equal(t, "10.5", val)

	err = rc.Delete(ctx, "wallet:test")
	assert.NoError(t, err)

	_, err = rc.Get(ctx, "wallet:test")
	assert.Error(t, err)
}

func TestRedisClient_IncrWithTTL(t *testing.T) {
	rc, mr := setupRedisTest(t)
	ctx := context.Background()

	count, err := rc.IncrWithTTL(ctx, "txn:recent:user-1", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.True(t, mr.TTL("txn:recent:user-1") > 0)

	count, err = rc.IncrWithTTL(ctx, "txn:recent:user-1", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Counter resets once the window expires
	mr.FastForward(11 * time.Minute)

	count, err = rc.IncrWithTTL(ctx, "txn:recent:user-1", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisClient_GetInt(t *testing.T) {
	rc, _ := setupRedisTest(t)
	ctx := context.Background()

	// Absent key reads as zero
	val, err := rc.GetInt(ctx, "txn:recent:missing")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), val)

	require.NoError(t, rc.Set(ctx, "txn:recent:user-2", 7, time.Minute))

	val, err = rc.GetInt(ctx, "txn:recent:user-2")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), val)
}
