package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

const listKeyPattern = "events:list:*"

// maxDetailTTL bounds how long a detail entry re-cached by a read racing
// an approval or edit can stay stale.
const maxDetailTTL = 30 * time.Second

// EventCacheStore caches approved-event reads in Redis.
type EventCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ contract.IEventCache = (*EventCacheStore)(nil)

func NewEventCacheStore(rdb *redis.Client, ttl time.Duration) *EventCacheStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	detailTTL := ttl
	if detailTTL > maxDetailTTL {
		detailTTL = maxDetailTTL
	}
	return &EventCacheStore{
		rdb:       rdb,
		detailTTL: detailTTL,
		listTTL:   ttl,
	}
}

func eventDetailKey(id string) string { return fmt.Sprintf("event:id:%s", id) }

func (c *EventCacheStore) GetEvent(ctx context.Context, id string) (*entity.Event, bool, error) {
	b, err := c.rdb.Get(ctx, eventDetailKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var event entity.Event
	if err := json.Unmarshal(b, &event); err != nil {
		// unreadable entries count as misses
		return nil, false, nil
	}
	return &event, true, nil
}

func (c *EventCacheStore) SetEvent(ctx context.Context, event *entity.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, eventDetailKey(event.ID), data, c.detailTTL).Err()
}

func (c *EventCacheStore) InvalidateEvent(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, eventDetailKey(id)).Err()
}

func (c *EventCacheStore) GetEventList(ctx context.Context, key string) ([]*entity.Event, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var events []*entity.Event
	if err := json.Unmarshal(b, &events); err != nil {
		return nil, false, nil
	}
	if events == nil {
		events = []*entity.Event{}
	}
	return events, true, nil
}

func (c *EventCacheStore) SetEventList(ctx context.Context, key string, events []*entity.Event) error {
	if events == nil {
		events = []*entity.Event{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidateEventLists drops every cached list page.
func (c *EventCacheStore) InvalidateEventLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, listKeyPattern, 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
