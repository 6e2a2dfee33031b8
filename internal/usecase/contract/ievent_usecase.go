package usecasecontract

import (
	"context"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

// EventQuery holds the public listing query string.
type EventQuery struct {
	Keyword   string
	Category  string
	DateRange string // "upcoming", "past" or empty
	SortBy    string
	Order     string
}

// EventInput carries event fields for create and update. On update, empty
// strings and a nil date keep the current value.
type EventInput struct {
	Title       string
	Description string
	Date        *time.Time
	StartTime   string
	EndTime     string
	Location    string
	Category    string
	EventImage  *string
}

type IEventUseCase interface {
	ListPublicEvents(ctx context.Context, q EventQuery) ([]*entity.Event, error)
	GetEvent(ctx context.Context, eventID string) (*entity.Event, error)
	CreateEvent(ctx context.Context, organizerID string, in EventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, eventID, userID string, in EventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, eventID, userID string, role entity.UserRole) error
	ListMyEvents(ctx context.Context, organizerID string) ([]*entity.Event, error)
	ListPendingEvents(ctx context.Context) ([]*entity.Event, error)
	ApproveEvent(ctx context.Context, eventID string) (*entity.Event, error)
	RejectEvent(ctx context.Context, eventID string) (*entity.Event, error)
}

// IRegistrationUseCase covers event registration and check-in verification.
type IRegistrationUseCase interface {
	RegisterForEvent(ctx context.Context, userID, eventID string) (string, error)
	GetRegistrationCode(ctx context.Context, userID, eventID string) (string, error)
	VerifyRegistrationCode(ctx context.Context, code string) (*entity.Verification, error)
	ListRegisteredEvents(ctx context.Context, userID string) ([]entity.RegisteredEvent, error)
}
