// Package notify keeps the transient notification queue shown after each
// mutation and fans new entries out to SSE subscribers.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Type 通知类型
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
)

// DefaultTTL 通知默认存活时间
const DefaultTTL = 5 * time.Second

// 事件类型
const (
	EventPosted    = "notification"
	EventDismissed = "notification_dismissed"
)

// Notification 一条通知
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Center 通知队列。每条通知在 ttl 后自动移除，Close 取消所有未触发的计时器。
type Center struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
	ttl    time.Duration
	hub    *Hub
	logger *zap.Logger
	now    func() time.Time
	closed bool
}

func NewCenter(ttl time.Duration, hub *Hub, logger *zap.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if hub == nil {
		hub = NewHub(logger)
	}
	return &Center{
		timers: make(map[string]*time.Timer),
		ttl:    ttl,
		hub:    hub,
		logger: logger,
		now:    time.Now,
	}
}

func (c *Center) Hub() *Hub { return c.hub }

// Post 加入一条通知并广播；Close 之后调用只记录日志
func (c *Center) Post(typ Type, message string) Notification {
	n := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Type:      typ,
		Timestamp: c.now(),
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug("notification dropped after close", zap.String("message", message))
		return n
	}
	c.items = append(c.items, n)
	c.timers[n.ID] = time.AfterFunc(c.ttl, func() { c.expire(n.ID) })
	c.mu.Unlock()

	c.broadcast(EventPosted, n)
	return n
}

// List 当前未过期的通知，按发布顺序
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Dismiss 提前移除，返回是否存在
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	n, ok := c.remove(id)
	if t, found := c.timers[id]; found {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	if ok {
		c.broadcast(EventDismissed, n)
	}
	return ok
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	n, ok := c.remove(id)
	delete(c.timers, id)
	c.mu.Unlock()

	if ok {
		c.broadcast(EventDismissed, n)
	}
}

// remove 调用方持有锁
func (c *Center) remove(id string) (Notification, bool) {
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return n, true
		}
	}
	return Notification{}, false
}

// Close 停止所有计时器，断开订阅者；可重复调用
func (c *Center) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	c.hub.CloseAll()
}

// Pending 未触发的计时器数
func (c *Center) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *Center) broadcast(eventType string, n Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		c.logger.Error("encode notification", zap.Error(err))
		return
	}
	c.hub.Broadcast(Event{EventType: eventType, Data: string(data)})
}
