// internal/service/notification/cache.go
package notification

import (
	"sort"
	"sync"

	"vendora-admin/internal/domain/notification"
)

// Cache is the gateway's normalized notification store: an id-keyed
// set of records with one canonical ordering (newest first). It is
// safe for concurrent use; readers only ever see copies, so nothing
// outside this package can mutate a cached record in place.
type Cache struct {
	mu      sync.RWMutex
	records map[string]notification.Record
}

func NewCache() *Cache {
	return &Cache{records: make(map[string]notification.Record)}
}

// UpsertMany inserts or overwrites each record by ID. Last write wins
// by call order; callers merging multiple sources are responsible for
// freshness ordering.
func (c *Cache) UpsertMany(records []notification.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		c.records[r.ID] = r
	}
}

// AddOne inserts or overwrites a single record. This is the only
// entry point granted to the push-event bridge.
func (c *Cache) AddOne(r notification.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records[r.ID] = r
}

// ReplaceAll swaps the cache content for an authoritative snapshot.
func (c *Cache) ReplaceAll(records []notification.Record) {
	next := make(map[string]notification.Record, len(records))
	for _, r := range records {
		next[r.ID] = r
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = next
}

// MarkRead flips the record to read. Marking an absent id is a no-op,
// not an error: the caller may be acting optimistically on a record
// that was concurrently removed or has not arrived yet.
func (c *Cache) MarkRead(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.records[id]
	if !ok {
		return false
	}
	r.IsRead = true
	c.records[id] = r
	return true
}

// MarkAllRead flips every present record to read, locally and in one
// pass. No record is added or removed.
func (c *Cache) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, r := range c.records {
		if !r.IsRead {
			r.IsRead = true
			c.records[id] = r
		}
	}
}

// Remove deletes the record; absent ids are a no-op.
func (c *Cache) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.records[id]
	delete(c.records, id)
	return ok
}

// Get returns a copy of the record for id.
func (c *Cache) Get(id string) (notification.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.records[id]
	return r, ok
}

// SelectAll returns every present record in canonical order:
// descending CreatedAt, with descending ID as a deterministic
// tie-break for records created in the same instant.
func (c *Cache) SelectAll() []notification.Record {
	c.mu.RLock()
	out := make([]notification.Record, 0, len(c.records))
	for _, r := range c.records {
		out = append(out, r)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// UnreadCount returns how many present records are unread.
func (c *Cache) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, r := range c.records {
		if !r.IsRead {
			n++
		}
	}
	return n
}

// Len returns the number of present records.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Summary aggregates counts for the UI badge and summary endpoints.
func (c *Cache) Summary() notification.Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := notification.Summary{Total: len(c.records)}
	for _, r := range c.records {
		if r.IsRead {
			s.Read++
		} else {
			s.Unread++
		}
	}
	return s
}
