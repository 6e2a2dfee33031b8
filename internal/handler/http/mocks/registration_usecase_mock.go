package mocks

import (
	"context"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

type MockRegistrationUsecase struct {
	Err          error
	Code         string
	Verification entity.Verification
	Registered   []entity.RegisteredEvent

	LastUserID  string
	LastEventID string
	LastCode    string
}

var _ usecasecontract.IRegistrationUseCase = (*MockRegistrationUsecase)(nil)

func NewMockRegistrationUsecase() *MockRegistrationUsecase {
	return &MockRegistrationUsecase{
		Code: "6f1c2a9e-3b7d-4c2a-9e55-0d4b8f1a7c11",
		Verification: entity.Verification{
			Event: entity.EventSummary{ID: "mock-event-id", Title: "Hackathon", Location: "Main Hall"},
			User:  entity.UserSummary{ID: "mock-user-id", Name: "Test Student", Email: "test@example.com", Role: entity.UserRoleStudent},
		},
	}
}

func (m *MockRegistrationUsecase) RegisterForEvent(ctx context.Context, userID, eventID string) (string, error) {
	m.LastUserID, m.LastEventID = userID, eventID
	if m.Err != nil {
		return "", m.Err
	}
	return m.Code, nil
}

func (m *MockRegistrationUsecase) GetRegistrationCode(ctx context.Context, userID, eventID string) (string, error) {
	m.LastUserID, m.LastEventID = userID, eventID
	if m.Err != nil {
		return "", m.Err
	}
	return m.Code, nil
}

func (m *MockRegistrationUsecase) VerifyRegistrationCode(ctx context.Context, code string) (*entity.Verification, error) {
	m.LastCode = code
	if m.Err != nil {
		return nil, m.Err
	}
	v := m.Verification
	return &v, nil
}

func (m *MockRegistrationUsecase) ListRegisteredEvents(ctx context.Context, userID string) ([]entity.RegisteredEvent, error) {
	m.LastUserID = userID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Registered, nil
}
