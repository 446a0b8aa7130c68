package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
)

// HeartbeatInterval SSE 保活间隔
var HeartbeatInterval = 30 * time.Second

// ListNotifications GET /notifications
func (h *Handlers) ListNotifications(c *gin.Context) {
	Success(c, h.notifications.List())
}

// DismissNotification DELETE /notifications/:id
func (h *Handlers) DismissNotification(c *gin.Context) {
	id := c.Param("id")
	if !h.notifications.Dismiss(id) {
		NotFound(c, "notification not found: "+id)
		return
	}
	Success(c, nil)
}

// StreamNotifications GET /notifications/stream
func (h *Handlers) StreamNotifications(c *gin.Context) {
	hub := h.notifications.Hub()
	clientID := uuid.New().String()
	client := &notify.Client{
		ID:     clientID,
		Events: make(chan notify.Event, 64),
	}
	hub.Register(client)
	defer hub.Unregister(clientID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Writer.WriteString("event: connected\ndata: {\"client_id\":\"" + clientID + "\"}\n\n")
	c.Writer.Flush()

	heartbeat := time.NewTicker(HeartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case event, ok := <-client.Events:
			if !ok {
				return
			}
			c.Writer.WriteString(fmt.Sprintf("event: %s\ndata: %s\n\n", event.EventType, event.Data))
			c.Writer.Flush()
		case <-heartbeat.C:
			c.Writer.WriteString(": keepalive\n\n")
			c.Writer.Flush()
		}
	}
}
