// internal/websocket/hub.go
package websocket

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"vendora-admin/internal/domain/notification"
	wstypes "vendora-admin/internal/domain/websocket"
)

// Hub fans notification events out to every connected admin UI client
// (multiple tabs or windows of the same console). It is write-only
// toward clients: nothing received on the UI socket mutates gateway
// state, so user-driven and server-driven mutations stay separable.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *wstypes.WSMessage

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *wstypes.WSMessage, 256),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// Register enqueues a freshly upgraded client.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// BroadcastNotification pushes a freshly arrived notification to all
// connected clients.
func (h *Hub) BroadcastNotification(r notification.Record) {
	h.broadcast <- wstypes.NewMessage(wstypes.EventTypeNotification, r)
}

// BroadcastUnreadCount pushes an unread badge update.
func (h *Hub) BroadcastUnreadCount(count int) {
	h.broadcast <- wstypes.NewMessage(wstypes.EventTypeNotificationCount, wstypes.NotificationCountData{
		UnreadCount: count,
	})
}

// ClientCount returns how many UI clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Info("ui client connected", zap.Int("total", len(h.clients)))

	client.SendMessage(wstypes.NewMessage(wstypes.EventTypeConnected, nil))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.Close()
		h.logger.Info("ui client disconnected", zap.Int("total", len(h.clients)))
	}
}

func (h *Hub) broadcastMessage(msg *wstypes.WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.SendMessage(msg)
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
	}
	h.clients = make(map[*Client]bool)
}
