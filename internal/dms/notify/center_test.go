package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPostListsInOrder(t *testing.T) {
	c := NewCenter(time.Minute, nil, zap.NewNop())
	defer c.Close()

	a := c.Post(TypeSuccess, "Order ORD-2024-011 created")
	b := c.Post(TypeWarning, "Fresh Fri 1L is low on stock")

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, TypeWarning, list[1].Type)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}

func TestNotificationsExpire(t *testing.T) {
	c := NewCenter(20*time.Millisecond, nil, nil)
	defer c.Close()

	c.Post(TypeInfo, "short lived")
	assert.Len(t, c.List(), 1)

	assert.Eventually(t, func() bool { return len(c.List()) == 0 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, c.Pending())
}

func TestDismiss(t *testing.T) {
	c := NewCenter(time.Minute, nil, nil)
	defer c.Close()

	n := c.Post(TypeError, "Status change failed")
	assert.True(t, c.Dismiss(n.ID))
	assert.Empty(t, c.List())
	assert.Zero(t, c.Pending())
	assert.False(t, c.Dismiss(n.ID))
}

func TestCloseCancelsTimers(t *testing.T) {
	c := NewCenter(time.Hour, nil, nil)
	c.Post(TypeInfo, "one")
	c.Post(TypeInfo, "two")
	assert.Equal(t, 2, c.Pending())

	c.Close()
	assert.Zero(t, c.Pending())
	c.Close()

	c.Post(TypeInfo, "after close")
	assert.Len(t, c.List(), 2)
}

func TestSubscribersReceivePostedAndDismissed(t *testing.T) {
	hub := NewHub(nil)
	c := NewCenter(time.Minute, hub, nil)
	defer c.Close()

	client := &Client{ID: "test", Events: make(chan Event, 4)}
	hub.Register(client)

	n := c.Post(TypeSuccess, "Invoice INV-2024-008 created")
	c.Dismiss(n.ID)

	posted := <-client.Events
	assert.Equal(t, EventPosted, posted.EventType)
	var got Notification
	require.NoError(t, json.Unmarshal([]byte(posted.Data), &got))
	assert.Equal(t, n.ID, got.ID)
	assert.Equal(t, "Invoice INV-2024-008 created", got.Message)

	dismissed := <-client.Events
	assert.Equal(t, EventDismissed, dismissed.EventType)
}

func TestBroadcastSkipsFullClients(t *testing.T) {
	hub := NewHub(nil)
	slow := &Client{ID: "slow", Events: make(chan Event)}
	hub.Register(slow)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(Event{EventType: "ping"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full client")
	}

	hub.Unregister("slow")
	_, open := <-slow.Events
	assert.False(t, open)
	assert.Zero(t, hub.Len())
}
