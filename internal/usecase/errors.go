package usecase

import (
	"errors"
	"fmt"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
)

// Error conditions surfaced to callers. Handlers map them to HTTP statuses
// with errors.Is, so every usecase error wraps exactly one of these.
var (
	ErrNotFound              = errors.New("not found")
	ErrUserNotFound          = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrEventNotFound         = fmt.Errorf("event not found: %w", ErrNotFound)
	ErrCategoryNotFound      = fmt.Errorf("category not found: %w", ErrNotFound)
	ErrSettingNotFound       = fmt.Errorf("setting not found: %w", ErrNotFound)
	ErrNotRegistered         = fmt.Errorf("user is not registered for this event: %w", ErrNotFound)
	ErrDuplicateRegistration = errors.New("already registered for this event")
	ErrInvalidCredential     = errors.New("invalid QR code")
	ErrUnauthorized          = errors.New("not authorized")
	ErrInvalidInput          = errors.New("invalid input")
	ErrConflict              = errors.New("conflict")
	ErrStorage               = errors.New("storage error")
	ErrEmailDelivery         = errors.New("email could not be sent")
	ErrUpload                = errors.New("image upload failed")
)

// userError is an error with a message meant for the client and a condition
// callers can test with errors.Is.
type userError struct {
	kind error
	msg  string
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.kind }

// newError builds an error that prints msg and matches kind.
func newError(kind error, msg string) error {
	return &userError{kind: kind, msg: msg}
}

// storageError wraps a persistence failure so it matches ErrStorage while
// keeping the cause for logs.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// classify maps a repository error to notFound when no document matched and
// to a storage error otherwise.
func classify(err error, notFound error, op string) error {
	if errors.Is(err, contract.ErrDocumentNotFound) {
		return notFound
	}
	return storageError(op, err)
}

// clientMessages are the texts shown for bare sentinels, checked in order
// so the most specific condition wins.
var clientMessages = []struct {
	kind error
	msg  string
}{
	{ErrUserNotFound, "User not found"},
	{ErrEventNotFound, "Event not found"},
	{ErrCategoryNotFound, "Category not found"},
	{ErrSettingNotFound, "Setting not found"},
	{ErrNotRegistered, "User is not registered for this event"},
	{ErrNotFound, "Not found"},
	{ErrDuplicateRegistration, "Already registered for this event"},
	{ErrInvalidCredential, "Invalid QR code"},
	{ErrUnauthorized, "Not authorized"},
	{ErrInvalidInput, "Invalid input"},
	{ErrConflict, "Conflict"},
	{ErrEmailDelivery, "Email could not be sent"},
	{ErrUpload, "Image upload failed"},
}

// ClientMessage returns the text a client may see for err. Storage and
// unknown failures never leak their cause.
func ClientMessage(err error) string {
	var ue *userError
	if errors.As(err, &ue) {
		return ue.msg
	}
	if errors.Is(err, ErrStorage) {
		return "Server error"
	}
	for _, m := range clientMessages {
		if errors.Is(err, m.kind) {
			return m.msg
		}
	}
	return "Server error"
}
