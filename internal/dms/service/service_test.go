package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/seed"
)

var fixedNow = time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)

type recorder struct {
	mu    sync.Mutex
	posts []notify.Notification
}

func (r *recorder) Post(typ notify.Type, message string) notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := notify.Notification{Type: typ, Message: message, Timestamp: fixedNow}
	r.posts = append(r.posts, n)
	return n
}

func (r *recorder) types() []notify.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Type, len(r.posts))
	for i, n := range r.posts {
		out[i] = n.Type
	}
	return out
}

func (r *recorder) last() notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.posts) == 0 {
		return notify.Notification{}
	}
	return r.posts[len(r.posts)-1]
}

func newTestServices(t *testing.T) (*Services, *recorder) {
	t.Helper()
	rec := &recorder{}
	svc, err := NewServices(seed.Default(), Deps{
		Notifier: rec,
		Clock:    func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return svc, rec
}

var ctx = context.Background()
