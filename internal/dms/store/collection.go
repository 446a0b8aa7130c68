// Package store keeps the in-memory collections each view is backed by.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

// Collection 按标识索引、保持插入顺序的实体集合。
// 所有变更都通过 Insert/Update 进行，每次成功变更版本号加一。
type Collection[T entity.Record] struct {
	kind    string
	mu      sync.RWMutex
	items   []T
	byID    map[string]int
	version atomic.Uint64
}

// New 用初始数据创建集合，重复标识返回 ValidationError
func New[T entity.Record](kind string, initial []T) (*Collection[T], error) {
	c := &Collection[T]{
		kind:  kind,
		items: make([]T, 0, len(initial)),
		byID:  make(map[string]int, len(initial)),
	}
	for _, item := range initial {
		if err := c.add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew 用于固定种子数据
func MustNew[T entity.Record](kind string, initial []T) *Collection[T] {
	c, err := New(kind, initial)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Collection[T]) add(item T) error {
	id := item.Key()
	if id == "" {
		return errorx.Invalid("id", "%s id is required", c.kind)
	}
	if _, ok := c.byID[id]; ok {
		return errorx.Invalid("id", "duplicate %s id %s", c.kind, id)
	}
	c.byID[id] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

func (c *Collection[T]) Kind() string { return c.kind }

// Version 当前版本号，只增不减
func (c *Collection[T]) Version() uint64 {
	return c.version.Load()
}

// Len 记录数
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Snapshot 按插入顺序返回全部记录的副本
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// SnapshotVersion 原子地返回副本及其对应的版本号
func (c *Collection[T]) SnapshotVersion() ([]T, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, c.version.Load()
}

// Get 按标识查找
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, errorx.NotFound(c.kind, id)
	}
	return c.items[i], nil
}

// Has 标识是否存在
func (c *Collection[T]) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.byID[id]
	return ok
}

// Insert 追加一条记录
func (c *Collection[T]) Insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.add(item); err != nil {
		return err
	}
	c.version.Inc()
	return nil
}

// ErrUnchanged 由 Update 的回调返回，表示无需写回（版本号不变）
var ErrUnchanged = errors.New("unchanged")

// Update 在写锁内对记录执行 fn。fn 返回错误时不做修改；
// 返回 ErrUnchanged 时不写回也不报错。标识不可修改。
func (c *Collection[T]) Update(id string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, errorx.NotFound(c.kind, id)
	}
	next := c.items[i]
	if err := fn(&next); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return c.items[i], nil
		}
		return c.items[i], err
	}
	if next.Key() != id {
		return c.items[i], errorx.Invalid("id", "%s id is immutable", c.kind)
	}
	c.items[i] = next
	c.version.Inc()
	return next, nil
}

// InsertNext 在同一把写锁内分配下一个标识并插入 build 构造的记录。
// existing 为当前记录，只读，用于唯一性检查；build 内不可调用集合的方法。
func (c *Collection[T]) InsertNext(prefix string, width int, build func(id string, existing []T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, err := build(c.nextID(prefix, width), c.items)
	if err != nil {
		return item, err
	}
	if err := c.add(item); err != nil {
		return item, err
	}
	c.version.Inc()
	return item, nil
}

// NextID 在 prefix 后续接最大序号，如 CUS-007 → CUS-008、ORD-2024-010 → ORD-2024-011
func (c *Collection[T]) NextID(prefix string, width int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextID(prefix, width)
}

func (c *Collection[T]) nextID(prefix string, width int) string {
	max := 0
	for _, item := range c.items {
		rest, ok := strings.CutPrefix(item.Key(), prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, max+1)
}
