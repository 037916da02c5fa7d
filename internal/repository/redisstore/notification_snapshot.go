// internal/repository/redisstore/notification_snapshot.go
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vendora-admin/internal/domain/notification"
)

const snapshotTTL = 24 * time.Hour

// NotificationSnapshotStore persists the in-memory notification cache
// to redis so a restarted gateway can show something before its first
// authoritative fetch. The snapshot is advisory: the TTL bounds how
// stale a warm start can be.
type NotificationSnapshotStore struct {
	client *redis.Client
	key    string
}

func NewNotificationSnapshotStore(client *redis.Client, adminID string) *NotificationSnapshotStore {
	return &NotificationSnapshotStore{
		client: client,
		key:    fmt.Sprintf("notifications:snapshot:%s", adminID),
	}
}

// Save overwrites the stored snapshot with the given records.
func (s *NotificationSnapshotStore) Save(ctx context.Context, records []notification.Record) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal notification snapshot: %w", err)
	}

	if err := s.client.Set(ctx, s.key, payload, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to store notification snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or an empty slice when none
// exists or the previous one expired.
func (s *NotificationSnapshotStore) Load(ctx context.Context) ([]notification.Record, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load notification snapshot: %w", err)
	}

	var records []notification.Record
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("failed to decode notification snapshot: %w", err)
	}
	return records, nil
}
