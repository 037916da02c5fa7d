package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora-admin/internal/domain/notification"
)

type fakeAPI struct {
	mu           sync.Mutex
	fetched      []notification.Record
	fetchErr     error
	markReadErr  error
	markAllErr   error
	deleteErr    error
	markedRead   []string
	markAllCalls int
	deleted      []string
}

func (f *fakeAPI) FetchNotifications(ctx context.Context) ([]notification.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]notification.Record, len(f.fetched))
	copy(out, f.fetched)
	return out, nil
}

func (f *fakeAPI) MarkNotificationRead(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markReadErr != nil {
		return f.markReadErr
	}
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeAPI) MarkAllNotificationsRead(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markAllErr != nil {
		return f.markAllErr
	}
	f.markAllCalls++
	return nil
}

func (f *fakeAPI) DeleteNotification(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSnapshots struct {
	mu     sync.Mutex
	saved  [][]notification.Record
	loaded []notification.Record
}

func (f *fakeSnapshots) Save(ctx context.Context, records []notification.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, records)
	return nil
}

func (f *fakeSnapshots) Load(ctx context.Context) ([]notification.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded, nil
}

type fakeHub struct {
	mu        sync.Mutex
	pushed    []notification.Record
	counts    []int
}

func (f *fakeHub) BroadcastNotification(r notification.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, r)
}

func (f *fakeHub) BroadcastUnreadCount(count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = append(f.counts, count)
}

func (f *fakeHub) lastCount() (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.counts) == 0 {
		return 0, false
	}
	return f.counts[len(f.counts)-1], true
}

func TestCenter_RefreshReplacesCache(t *testing.T) {
	api := &fakeAPI{fetched: []notification.Record{
		record("n1", time.Now(), false),
		record("n2", time.Now(), true),
	}}
	center := NewCenter(api, nil, nil, nil)
	center.AddOne(record("stale", time.Now(), false))

	require.NoError(t, center.Refresh(context.Background()))

	assert.Equal(t, 2, len(center.Records()))
	assert.Equal(t, 1, center.UnreadCount())
}

func TestCenter_MarkReadOptimistic(t *testing.T) {
	api := &fakeAPI{}
	center := NewCenter(api, nil, nil, nil)
	center.AddOne(record("n1", time.Now(), false))

	require.NoError(t, center.MarkRead(context.Background(), "n1"))

	assert.Equal(t, 0, center.UnreadCount())
	assert.Equal(t, []string{"n1"}, api.markedRead)
}

func TestCenter_MarkReadRollsBackOnFailure(t *testing.T) {
	api := &fakeAPI{markReadErr: errors.New("503")}
	center := NewCenter(api, nil, nil, nil)
	center.AddOne(record("n1", time.Now(), false))

	err := center.MarkRead(context.Background(), "n1")
	require.Error(t, err)

	// The optimistic flip must have been compensated.
	assert.Equal(t, 1, center.UnreadCount())
	got := center.Records()
	require.Len(t, got, 1)
	assert.False(t, got[0].IsRead)
}

func TestCenter_MarkAllReadRollsBackOnFailure(t *testing.T) {
	api := &fakeAPI{markAllErr: errors.New("timeout")}
	center := NewCenter(api, nil, nil, nil)
	now := time.Now()
	center.AddOne(record("n1", now, false))
	center.AddOne(record("n2", now.Add(time.Second), true))

	err := center.MarkAllRead(context.Background())
	require.Error(t, err)

	assert.Equal(t, 1, center.UnreadCount(), "previous read states restored")
	assert.Equal(t, 2, len(center.Records()))
}

func TestCenter_MarkAllRead(t *testing.T) {
	api := &fakeAPI{}
	hub := &fakeHub{}
	center := NewCenter(api, nil, hub, nil)
	now := time.Now()
	center.AddOne(record("n1", now, false))
	center.AddOne(record("n2", now.Add(time.Second), false))

	before := len(center.Records())
	require.NoError(t, center.MarkAllRead(context.Background()))

	assert.Equal(t, 0, center.UnreadCount())
	assert.Equal(t, before, len(center.Records()))
	assert.Equal(t, 1, api.markAllCalls)

	count, ok := hub.lastCount()
	require.True(t, ok)
	assert.Equal(t, 0, count)
}

func TestCenter_DeleteRollsBackOnFailure(t *testing.T) {
	api := &fakeAPI{deleteErr: errors.New("502")}
	center := NewCenter(api, nil, nil, nil)
	center.AddOne(record("n1", time.Now(), false))

	err := center.Delete(context.Background(), "n1")
	require.Error(t, err)

	assert.Equal(t, 1, len(center.Records()), "deleted record restored after failed confirmation")
}

func TestCenter_Delete(t *testing.T) {
	api := &fakeAPI{}
	center := NewCenter(api, nil, nil, nil)
	center.AddOne(record("n1", time.Now(), false))

	require.NoError(t, center.Delete(context.Background(), "n1"))

	assert.Empty(t, center.Records())
	assert.Equal(t, []string{"n1"}, api.deleted)
}

func TestCenter_LatePushDoesNotResurrectUnread(t *testing.T) {
	// Mark-read races ahead of the push delivering the record itself:
	// the mark lands first against an absent id, then the (unread)
	// record arrives over the socket.
	api := &fakeAPI{}
	center := NewCenter(api, nil, nil, nil)

	require.NoError(t, center.MarkRead(context.Background(), "n1"))
	center.AddOne(record("n1", time.Now(), false))

	got := center.Records()
	require.Len(t, got, 1)
	assert.True(t, got[0].IsRead, "locally read record must stay read when its push arrives late")
	assert.Equal(t, 0, center.UnreadCount())
}

func TestCenter_RefreshReappliesUnconfirmedReads(t *testing.T) {
	now := time.Now()
	api := &fakeAPI{fetched: []notification.Record{record("n1", now, false)}}
	center := NewCenter(api, nil, nil, nil)
	center.AddOne(record("n1", now, false))

	require.NoError(t, center.MarkRead(context.Background(), "n1"))

	// The upstream list hasn't caught up; the local read must survive.
	require.NoError(t, center.Refresh(context.Background()))

	got := center.Records()
	require.Len(t, got, 1)
	assert.True(t, got[0].IsRead)
}

func TestCenter_WarmStartSeedsFromSnapshot(t *testing.T) {
	snaps := &fakeSnapshots{loaded: []notification.Record{
		record("n1", time.Now(), true),
	}}
	center := NewCenter(&fakeAPI{}, snaps, nil, nil)

	require.NoError(t, center.WarmStart(context.Background()))

	assert.Equal(t, 1, len(center.Records()))
}

func TestCenter_AddOnePersistsAndBroadcasts(t *testing.T) {
	snaps := &fakeSnapshots{}
	hub := &fakeHub{}
	center := NewCenter(&fakeAPI{}, snaps, hub, nil)

	r := record("n1", time.Now(), false)
	center.AddOne(r)

	snaps.mu.Lock()
	saves := len(snaps.saved)
	snaps.mu.Unlock()
	assert.Equal(t, 1, saves)

	hub.mu.Lock()
	pushed := len(hub.pushed)
	hub.mu.Unlock()
	require.Equal(t, 1, pushed)

	count, ok := hub.lastCount()
	require.True(t, ok)
	assert.Equal(t, 1, count)
}
