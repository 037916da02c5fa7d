// internal/domain/websocket/types.go
package websocket

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
)

// EventType represents the real-time event types the gateway pushes
// to connected admin UI clients.
type EventType string

const (
	EventTypeConnected         EventType = "connected"
	EventTypeNotification      EventType = "notification"
	EventTypeNotificationCount EventType = "notification:count"
)

// WSMessage is the universal message format on the UI-facing socket.
type WSMessage struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	ID        string      `json:"id,omitempty"` // for client-side dedup/tracking
}

// NotificationCountData carries unread badge updates.
type NotificationCountData struct {
	UnreadCount int `json:"unread_count"`
}

// NewMessage stamps an outgoing message with a timestamp and a sortable id.
func NewMessage(eventType EventType, data interface{}) *WSMessage {
	return &WSMessage{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now(),
		ID:        ulid.Make().String(),
	}
}

func (m *WSMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
