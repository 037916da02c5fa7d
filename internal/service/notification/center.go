// internal/service/notification/center.go
package notification

import (
	"context"
	"fmt"
	"sync"

	"vendora-admin/internal/domain/notification"

	"go.uber.org/zap"
)

// API is the upstream confirmation surface consumed by the center.
// Every operation is idempotent on the upstream side: repeating a call
// after success neither errors nor changes state further.
type API interface {
	FetchNotifications(ctx context.Context) ([]notification.Record, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}

// SnapshotStore persists the cache content across restarts. The
// snapshot is a warm-start hint only; Refresh remains the source of
// truth.
type SnapshotStore interface {
	Save(ctx context.Context, records []notification.Record) error
	Load(ctx context.Context) ([]notification.Record, error)
}

// Broadcaster fans fresh notifications and unread-count updates out to
// connected admin UI clients.
type Broadcaster interface {
	BroadcastNotification(r notification.Record)
	BroadcastUnreadCount(count int)
}

// Center owns the notification cache and coordinates its three
// mutation sources: authoritative fetches, push events, and user
// actions. User actions are applied optimistically and confirmed
// upstream; when confirmation fails the pre-mutation state is restored
// and the error is returned to the caller.
//
// localReads tracks ids the user marked read this session. A push or
// refresh delivering a stale unread copy of such a record is re-marked
// read, so out-of-order delivery cannot resurrect an unread badge. An
// id leaves the set once server-sourced data reflects the read, or
// when its confirmation call fails.
type Center struct {
	cache     *Cache
	api       API
	snapshots SnapshotStore
	hub       Broadcaster
	logger    *zap.Logger

	mu         sync.Mutex
	localReads map[string]struct{}
}

// NewCenter wires a center around the upstream API. Snapshot store and
// broadcaster are optional; pass nil to disable them.
func NewCenter(api API, snapshots SnapshotStore, hub Broadcaster, logger *zap.Logger) *Center {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Center{
		cache:      NewCache(),
		api:        api,
		snapshots:  snapshots,
		hub:        hub,
		logger:     logger,
		localReads: make(map[string]struct{}),
	}
}

// WarmStart seeds the cache from the last persisted snapshot so the UI
// has something to show before the first authoritative fetch lands.
func (s *Center) WarmStart(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	records, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notification snapshot: %w", err)
	}
	s.cache.UpsertMany(records)
	return nil
}

// Refresh replaces the cache with the upstream's authoritative list,
// then reapplies read marks the server has not confirmed yet.
func (s *Center) Refresh(ctx context.Context) error {
	records, err := s.api.FetchNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch notifications: %w", err)
	}

	s.mu.Lock()
	s.cache.ReplaceAll(records)
	for id := range s.localReads {
		r, ok := s.cache.Get(id)
		switch {
		case !ok:
			delete(s.localReads, id)
		case r.IsRead:
			// Server caught up; the local mark is no longer needed.
			delete(s.localReads, id)
		default:
			s.cache.MarkRead(id)
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.broadcastCount()
	return nil
}

// MarkRead optimistically flips the record to read, then confirms
// upstream. On confirmation failure the prior state is restored and
// the error returned, so the caller can surface a retry.
func (s *Center) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	prior, had := s.cache.Get(id)
	s.cache.MarkRead(id)
	s.localReads[id] = struct{}{}
	s.mu.Unlock()

	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		s.mu.Lock()
		delete(s.localReads, id)
		if had {
			s.cache.AddOne(prior)
		}
		s.mu.Unlock()
		return fmt.Errorf("failed to confirm mark-read: %w", err)
	}

	s.persist(ctx)
	s.broadcastCount()
	return nil
}

// MarkAllRead flips every cached record to read locally, then confirms
// upstream; the flip does not wait on the round-trip. Confirmation
// failure restores the previous read states.
func (s *Center) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	prior := s.cache.SelectAll()
	flipped := make([]string, 0, len(prior))
	for _, r := range prior {
		if !r.IsRead {
			flipped = append(flipped, r.ID)
			s.localReads[r.ID] = struct{}{}
		}
	}
	s.cache.MarkAllRead()
	s.mu.Unlock()

	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		s.mu.Lock()
		for _, id := range flipped {
			delete(s.localReads, id)
		}
		s.cache.UpsertMany(prior)
		s.mu.Unlock()
		return fmt.Errorf("failed to confirm mark-all-read: %w", err)
	}

	s.persist(ctx)
	s.broadcastCount()
	return nil
}

// Delete removes the record optimistically and confirms upstream,
// restoring it if the confirmation fails.
func (s *Center) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	prior, had := s.cache.Get(id)
	_, wasLocalRead := s.localReads[id]
	s.cache.Remove(id)
	delete(s.localReads, id)
	s.mu.Unlock()

	if err := s.api.DeleteNotification(ctx, id); err != nil {
		s.mu.Lock()
		if had {
			s.cache.AddOne(prior)
		}
		if wasLocalRead {
			s.localReads[id] = struct{}{}
		}
		s.mu.Unlock()
		return fmt.Errorf("failed to confirm delete: %w", err)
	}

	s.persist(ctx)
	s.broadcastCount()
	return nil
}

// AddOne accepts a freshly pushed notification. This is the only
// mutation the socket bridge is granted; read-state and deletion stay
// user-driven.
func (s *Center) AddOne(r notification.Record) {
	s.mu.Lock()
	if _, pending := s.localReads[r.ID]; pending {
		r.IsRead = true
	}
	s.cache.AddOne(r)
	s.mu.Unlock()

	s.persist(context.Background())
	if s.hub != nil {
		s.hub.BroadcastNotification(r)
	}
	s.broadcastCount()
}

// Records returns the cached notifications in canonical order.
func (s *Center) Records() []notification.Record {
	return s.cache.SelectAll()
}

// UnreadCount returns the current unread total.
func (s *Center) UnreadCount() int {
	return s.cache.UnreadCount()
}

// Summary returns aggregate counts for the cached set.
func (s *Center) Summary() notification.Summary {
	return s.cache.Summary()
}

func (s *Center) persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, s.cache.SelectAll()); err != nil {
		s.logger.Warn("failed to persist notification snapshot", zap.Error(err))
	}
}

func (s *Center) broadcastCount() {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastUnreadCount(s.cache.UnreadCount())
}
