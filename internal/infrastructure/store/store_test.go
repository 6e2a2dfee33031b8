package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

func newTestStore(t *testing.T) (*EventCacheStore, *miniredis.Miniredis) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewEventCacheStore(rdb, time.Minute), s
}

func TestEventCacheStore_Detail(t *testing.T) {
	c, s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := c.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, ok)

	ev := &entity.Event{ID: "e1", Title: "Hackathon", IsApproved: true,
		Organizer: &entity.UserSummary{ID: "o1", Name: "Org"}}
	require.NoError(t, c.SetEvent(ctx, ev))
	assert.True(t, s.Exists("event:id:e1"))
	assert.Equal(t, maxDetailTTL, s.TTL("event:id:e1"))

	got, ok, err := c.GetEvent(ctx, "e1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Hackathon", got.Title)
	assert.Equal(t, "Org", got.Organizer.Name)

	require.NoError(t, c.InvalidateEvent(ctx, "e1"))
	_, ok, _ = c.GetEvent(ctx, "e1")
	assert.False(t, ok)
}

func TestEventCacheStore_DetailTTLIsCapped(t *testing.T) {
	c, s := newTestStore(t)
	ctx := context.Background()

	// a stale copy written after an approval expires within the cap
	require.NoError(t, c.SetEvent(ctx, &entity.Event{ID: "e1", IsApproved: false}))
	require.NoError(t, c.SetEventList(ctx, "events:list:k", []*entity.Event{}))
	assert.Equal(t, 30*time.Second, s.TTL("event:id:e1"))
	assert.Equal(t, time.Minute, s.TTL("events:list:k"))

	s.FastForward(31 * time.Second)
	_, ok, err := c.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, ok)

	short := NewEventCacheStore(c.rdb, 10*time.Second)
	require.NoError(t, short.SetEvent(ctx, &entity.Event{ID: "e2"}))
	assert.Equal(t, 10*time.Second, s.TTL("event:id:e2"))
}

func TestEventCacheStore_CorruptEntryIsMiss(t *testing.T) {
	c, s := newTestStore(t)
	require.NoError(t, s.Set("event:id:bad", "{not json"))
	_, ok, err := c.GetEvent(context.Background(), "bad")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEventCacheStore_Lists(t *testing.T) {
	c, s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, c.SetEventList(ctx, "events:list:k=:c=:r=:sb=date:o=asc", []*entity.Event{{ID: "e1"}, {ID: "e2"}}))
	require.NoError(t, c.SetEventList(ctx, "events:list:k=tech:c=:r=:sb=date:o=asc", nil))
	require.NoError(t, s.Set("event:id:e1", "{}"))

	got, ok, err := c.GetEventList(ctx, "events:list:k=:c=:r=:sb=date:o=asc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got, 2)

	empty, ok, err := c.GetEventList(ctx, "events:list:k=tech:c=:r=:sb=date:o=asc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, c.InvalidateEventLists(ctx))
	_, ok, _ = c.GetEventList(ctx, "events:list:k=:c=:r=:sb=date:o=asc")
	assert.False(t, ok)
	assert.True(t, s.Exists("event:id:e1"), "detail keys survive list invalidation")
}

func TestEventCacheStore_InvalidateManyLists(t *testing.T) {
	c, s := newTestStore(t)
	ctx := context.Background()
	for i := 0; i < 450; i++ {
		require.NoError(t, s.Set(fmt.Sprintf("events:list:k=%d", i), "[]"))
	}
	require.NoError(t, c.InvalidateEventLists(ctx))
	assert.Empty(t, s.Keys())
}

func TestEventCacheStore_RedisDown(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()
	c := NewEventCacheStore(rdb, time.Minute)
	s.Close()

	_, _, err = c.GetEvent(context.Background(), "e1")
	assert.Error(t, err)
}
