package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/metrics"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

const (
	msgQRCodeRequired    = "QR code is required"
	msgInvalidQRCode     = "Invalid QR code"
	msgEventForCodeGone  = "Event not found for this registration"
	msgNotRegistered     = "User is not registered for this event"
	msgAlreadyRegistered = "Already registered for this event"
)

// RegistrationUsecase issues and verifies per-event registration codes.
type RegistrationUsecase struct {
	userRepo      contract.IUserRepository
	eventRepo     contract.IEventRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

func NewRegistrationUsecase(userRepo contract.IUserRepository, eventRepo contract.IEventRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *RegistrationUsecase {
	return &RegistrationUsecase{
		userRepo:      userRepo,
		eventRepo:     eventRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

var _ usecasecontract.IRegistrationUseCase = (*RegistrationUsecase)(nil)

// RegisterForEvent records a registration and returns its new code. The
// write is conditional on the event not being in the user's list yet, so two
// concurrent calls for the same pair produce exactly one entry.
func (uc *RegistrationUsecase) RegisterForEvent(ctx context.Context, userID, eventID string) (string, error) {
	if _, err := uc.eventRepo.GetEventByID(ctx, eventID); err != nil {
		return "", classify(err, ErrEventNotFound, "get event")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", classify(err, ErrUserNotFound, "get user")
	}
	if _, ok := entity.FindByEvent(user.RegisteredEvents, eventID); ok {
		return "", newError(ErrDuplicateRegistration, msgAlreadyRegistered)
	}

	entry := entity.RegistrationEntry{EventID: eventID, RegistrationCode: uc.uuidGenerator.NewUUID()}
	if !entry.Valid() {
		return "", errors.New("failed to generate registration code")
	}

	appended, err := uc.userRepo.AppendRegistration(ctx, userID, entry)
	if err != nil {
		uc.logger.Errorf("failed to append registration for user %s event %s: %v", userID, eventID, err)
		return "", storageError("append registration", err)
	}
	if !appended {
		// Either the user vanished or a concurrent request won.
		if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
			return "", classify(err, ErrUserNotFound, "get user")
		}
		return "", newError(ErrDuplicateRegistration, msgAlreadyRegistered)
	}

	metrics.IncRegistration()
	uc.logger.Infof("user %s registered for event %s", userID, eventID)
	return entry.RegistrationCode, nil
}

// GetRegistrationCode returns the stored code for the user's registration.
func (uc *RegistrationUsecase) GetRegistrationCode(ctx context.Context, userID, eventID string) (string, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", classify(err, ErrUserNotFound, "get user")
	}
	entry, ok := entity.FindByEvent(user.RegisteredEvents, eventID)
	if !ok {
		return "", newError(ErrNotRegistered, msgNotRegistered)
	}
	return entry.RegistrationCode, nil
}

// VerifyRegistrationCode resolves a scanned code to its event and attendee.
// It does not mark attendance; the same code verifies any number of times.
func (uc *RegistrationUsecase) VerifyRegistrationCode(ctx context.Context, code string) (*entity.Verification, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, newError(ErrInvalidInput, msgQRCodeRequired)
	}

	user, err := uc.userRepo.GetUserByRegistrationCode(ctx, code)
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			metrics.IncVerification("invalid")
			return nil, newError(ErrInvalidCredential, msgInvalidQRCode)
		}
		metrics.IncVerification("error")
		uc.logger.Errorf("failed to look up registration code: %v", err)
		return nil, storageError("verify code", err)
	}

	entry, ok := entity.FindByCode(user.RegisteredEvents, code)
	if !ok {
		metrics.IncVerification("invalid")
		return nil, newError(ErrInvalidCredential, msgInvalidQRCode)
	}

	event, err := uc.eventRepo.GetEventByID(ctx, entry.EventID)
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			metrics.IncVerification("invalid")
			return nil, newError(ErrEventNotFound, msgEventForCodeGone)
		}
		metrics.IncVerification("error")
		return nil, storageError("get event", err)
	}

	metrics.IncVerification("valid")
	return &entity.Verification{Event: event.Summary(), User: user.Summary()}, nil
}

// ListRegisteredEvents returns the user's well-formed registrations in stored
// order. Entries whose event was deleted carry a nil Event.
func (uc *RegistrationUsecase) ListRegisteredEvents(ctx context.Context, userID string) ([]entity.RegisteredEvent, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, classify(err, ErrUserNotFound, "get user")
	}

	entries := entity.CleanRegistrations(user.RegisteredEvents)
	out := make([]entity.RegisteredEvent, 0, len(entries))
	for _, entry := range entries {
		item := entity.RegisteredEvent{RegistrationEntry: entry}
		event, err := uc.eventRepo.GetEventByID(ctx, entry.EventID)
		switch {
		case err == nil:
			item.Event = event
		case errors.Is(err, contract.ErrDocumentNotFound):
		default:
			return nil, storageError("get event", err)
		}
		out = append(out, item)
	}
	return out, nil
}
