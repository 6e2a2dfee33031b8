package contract

import (
	"context"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

// IEventCache caches public event reads.
type IEventCache interface {
	GetEvent(ctx context.Context, id string) (*entity.Event, bool, error)
	SetEvent(ctx context.Context, event *entity.Event) error
	InvalidateEvent(ctx context.Context, id string) error

	// List pages (key built by usecase)
	GetEventList(ctx context.Context, key string) ([]*entity.Event, bool, error)
	SetEventList(ctx context.Context, key string, events []*entity.Event) error
	InvalidateEventLists(ctx context.Context) error
}
