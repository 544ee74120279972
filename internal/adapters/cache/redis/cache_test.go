package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	c := New(client, "", ttl)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGet(t *testing.T) {
	c, mr := setupCache(t, time.Hour)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "compat:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "compat:abc", "reading-1"))

	v, ok, err := c.Get(ctx, "compat:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "reading-1", v)

	assert.True(t, mr.Exists(DefaultPrefix+"compat:abc"))
	assert.Equal(t, time.Hour, mr.TTL(DefaultPrefix+"compat:abc"))
}

func TestCache_Expires(t *testing.T) {
	c, mr := setupCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v"))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := Open(context.Background(), Config{URL: "redis://" + mr.Addr() + "/0", Prefix: "test:"})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(context.Background(), "k", "v"))
	assert.True(t, mr.Exists("test:k"))

	_, err = Open(context.Background(), Config{URL: "not a url"})
	assert.Error(t, err)
}
