package mocks

import (
	"context"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	"github.com/sumitgupta24/eventxpert-backend/internal/usecase"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// MockEventUsecase records calls and returns MockEvent unless Err is set.
type MockEventUsecase struct {
	Err       error
	MockEvent entity.Event

	LastQuery   usecasecontract.EventQuery
	LastInput   usecasecontract.EventInput
	LastUserID  string
	LastRole    entity.UserRole
	LastEventID string
}

var _ usecasecontract.IEventUseCase = (*MockEventUsecase)(nil)

func NewMockEventUsecase() *MockEventUsecase {
	return &MockEventUsecase{
		MockEvent: entity.Event{
			ID:          "mock-event-id",
			Title:       "Hackathon",
			Description: "24h build",
			Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			StartTime:   "09:00",
			EndTime:     "21:00",
			Location:    "Main Hall",
			Category:    "Technology",
			IsApproved:  true,
			OrganizerID: "mock-organizer-id",
			EventImage:  entity.DefaultEventImage,
			Organizer:   &entity.UserSummary{ID: "mock-organizer-id", Name: "Org", Email: "org@example.com"},
		},
	}
}

func (m *MockEventUsecase) one() (*entity.Event, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	e := m.MockEvent
	return &e, nil
}

func (m *MockEventUsecase) many() ([]*entity.Event, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	e := m.MockEvent
	return []*entity.Event{&e}, nil
}

func (m *MockEventUsecase) ListPublicEvents(ctx context.Context, q usecasecontract.EventQuery) ([]*entity.Event, error) {
	m.LastQuery = q
	return m.many()
}

func (m *MockEventUsecase) GetEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	m.LastEventID = eventID
	if m.Err == nil && eventID != m.MockEvent.ID {
		return nil, usecase.ErrEventNotFound
	}
	return m.one()
}

func (m *MockEventUsecase) CreateEvent(ctx context.Context, organizerID string, in usecasecontract.EventInput) (*entity.Event, error) {
	m.LastUserID, m.LastInput = organizerID, in
	return m.one()
}

func (m *MockEventUsecase) UpdateEvent(ctx context.Context, eventID, userID string, in usecasecontract.EventInput) (*entity.Event, error) {
	m.LastEventID, m.LastUserID, m.LastInput = eventID, userID, in
	return m.one()
}

func (m *MockEventUsecase) DeleteEvent(ctx context.Context, eventID, userID string, role entity.UserRole) error {
	m.LastEventID, m.LastUserID, m.LastRole = eventID, userID, role
	return m.Err
}

func (m *MockEventUsecase) ListMyEvents(ctx context.Context, organizerID string) ([]*entity.Event, error) {
	m.LastUserID = organizerID
	return m.many()
}

func (m *MockEventUsecase) ListPendingEvents(ctx context.Context) ([]*entity.Event, error) {
	return m.many()
}

func (m *MockEventUsecase) ApproveEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	m.LastEventID = eventID
	e, err := m.one()
	if e != nil {
		e.IsApproved = true
	}
	return e, err
}

func (m *MockEventUsecase) RejectEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	m.LastEventID = eventID
	e, err := m.one()
	if e != nil {
		e.IsApproved = false
	}
	return e, err
}
