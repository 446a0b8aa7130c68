package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type view struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

func TestKeyChangesWithInstanceVersionAndQuery(t *testing.T) {
	q := map[string]string{"q": "village", "type": "Retail"}
	k1 := Key("a1", "customers", 1, q)

	assert.Equal(t, k1, Key("a1", "customers", 1, map[string]string{"type": "Retail", "q": "village"}))
	assert.NotEqual(t, k1, Key("a1", "customers", 2, q))
	assert.NotEqual(t, k1, Key("a1", "orders", 1, q))
	assert.NotEqual(t, k1, Key("a1", "customers", 1, map[string]string{"q": "kiosk"}))
	assert.NotEqual(t, k1, Key("b2", "customers", 1, q))
	assert.Contains(t, k1, "dash:a1:customers:v1:")
}

func TestNoopNeverHits(t *testing.T) {
	var c ViewCache = Noop{}
	require.NoError(t, c.Store(context.Background(), "k", view{Total: 1}))

	var got view
	hit, err := c.Load(context.Background(), "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	ctx := context.Background()
	c := NewRedisCache(rdb, 5*time.Second)
	require.NoError(t, c.Ping(ctx))

	key := Key("test", "roundtrip", uint64(time.Now().UnixNano()), nil)
	defer rdb.Del(ctx, key)

	var got view
	hit, err := c.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Store(ctx, key, view{Items: []string{"CUS-003"}, Total: 1}))
	hit, err = c.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, view{Items: []string{"CUS-003"}, Total: 1}, got)
}
