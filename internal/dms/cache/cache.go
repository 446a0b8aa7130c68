// Package cache stores derived list views in redis.
// Keys embed the owning process instance and the collection version, so a
// mutation or another replica never serves a stale view.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewCache 派生视图缓存
type ViewCache interface {
	// Load 命中时把缓存值解码到 dst 并返回 true
	Load(ctx context.Context, key string, dst any) (bool, error)
	Store(ctx context.Context, key string, value any) error
}

// Key dash:<instance>:<view>:v<version>:<md5(query)>
// instance 标识持有集合的进程，版本号只在该进程内单调递增
func Key(instance, view string, version uint64, q any) string {
	raw, _ := json.Marshal(q)
	sum := md5.Sum(raw)
	return fmt.Sprintf("dash:%s:%s:v%d:%s", instance, view, version, hex.EncodeToString(sum[:]))
}

// Noop 未配置 redis 时使用
type Noop struct{}

func (Noop) Load(context.Context, string, any) (bool, error) { return false, nil }

func (Noop) Store(context.Context, string, any) error { return nil }

// RedisCache JSON 编码存储，过期时间 ttl
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Load(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached view: %w", err)
	}
	return true, nil
}

func (c *RedisCache) Store(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode view: %w", err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping 就绪检查
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
