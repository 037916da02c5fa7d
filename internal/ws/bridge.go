// internal/ws/bridge.go
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"vendora-admin/internal/domain/notification"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512 * 1024 // 512KB

	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Pusher is the only mutation the bridge is granted on the
// notification cache. Read-state changes and deletions stay with the
// user-driven operations layer.
type Pusher interface {
	AddOne(r notification.Record)
}

// event is the upstream socket envelope.
type event struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	ID        string          `json:"id,omitempty"`
}

// Bridge maintains a persistent connection to the upstream
// notification socket and forwards freshly arrived notifications to
// the pusher. Delivery upstream is at-least-once and unordered; the
// cache's upsert semantics absorb duplicates.
type Bridge struct {
	url    string
	token  string
	pusher Pusher
	logger *zap.Logger

	done      chan struct{}
	closeOnce sync.Once
}

func NewBridge(url, token string, pusher Pusher, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		url:    url,
		token:  token,
		pusher: pusher,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Run dials the socket and pumps events until the context is
// cancelled or Close is called, reconnecting with capped backoff.
func (b *Bridge) Run(ctx context.Context) {
	backoff := initialBackoff

	for {
		if b.stopped(ctx) {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, b.url, b.header())
		if err != nil {
			b.logger.Warn("failed to connect to notification socket", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}

		backoff = initialBackoff
		b.logger.Info("connected to notification socket", zap.String("url", b.url))
		b.pump(ctx, conn)
		conn.Close()
	}
}

// Close stops the bridge permanently.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}

func (b *Bridge) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-b.done:
		return true
	default:
		return false
	}
}

func (b *Bridge) header() http.Header {
	h := http.Header{}
	if b.token != "" {
		h.Set("Authorization", "Bearer "+b.token)
	}
	return h
}

// pump reads events off one connection until it fails or the bridge
// stops. A side goroutine keeps the connection alive with pings and
// closes it on shutdown so the blocking read returns.
func (b *Bridge) pump(ctx context.Context, conn *websocket.Conn) {
	readerDone := make(chan struct{})
	defer close(readerDone)

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-readerDone:
				return
			case <-ctx.Done():
				conn.Close()
				return
			case <-b.done:
				conn.Close()
				return
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					conn.Close()
					return
				}
			}
		}
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if !b.stopped(ctx) && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				b.logger.Warn("notification socket read failed", zap.Error(err))
			}
			return
		}
		b.handleMessage(message)
	}
}

func (b *Bridge) handleMessage(message []byte) {
	var evt event
	if err := json.Unmarshal(message, &evt); err != nil {
		b.logger.Warn("failed to decode socket event", zap.Error(err))
		return
	}

	// Only notification payloads reach the cache; everything else on
	// the channel (counts, system chatter) is ignored here.
	if evt.Type != "notification" {
		return
	}

	var r notification.Record
	if err := json.Unmarshal(evt.Data, &r); err != nil {
		b.logger.Warn("failed to decode notification payload", zap.Error(err))
		return
	}
	if r.ID == "" {
		b.logger.Warn("dropping notification without id")
		return
	}

	b.pusher.AddOne(r)
}
