package contract

import (
	"context"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

// EventFilterOptions holds database-agnostic parameters for listing events.
type EventFilterOptions struct {
	Keyword     string
	Category    string
	DateFrom    *time.Time // inclusive
	DateBefore  *time.Time // exclusive
	Approved    *bool
	OrganizerID string
	SortBy      string // one of date, title, created_at, category, location
	SortOrder   string // "asc" or "desc"
}

// IEventRepository provides methods for managing event data in the database.
type IEventRepository interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
	// GetEventByID returns the event with its organizer summary joined.
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)
	GetEvents(ctx context.Context, opts *EventFilterOptions) ([]*entity.Event, error)
	UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) (*entity.Event, error)
	// SetApproval writes the approval flag and returns the stored event.
	SetApproval(ctx context.Context, id string, approved bool) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	CountEvents(ctx context.Context, approved *bool) (int64, error)
	CountByCategory(ctx context.Context) ([]entity.CategoryCount, error)
	CountByMonth(ctx context.Context) ([]entity.MonthCount, error)
}
