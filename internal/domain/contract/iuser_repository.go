package contract

import (
	"context"
	"errors"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

// ErrDocumentNotFound is returned by repositories when no document matches.
var ErrDocumentNotFound = errors.New("document not found")

// ErrDuplicateKey is returned when a unique index rejects a write.
var ErrDuplicateKey = errors.New("duplicate key")

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListUsers returns every user, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// UpdateUser replaces the mutable fields of an existing user and returns the stored copy.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int64, error)

	// AppendRegistration pushes entry onto the user's list only if no
	// well-formed entry for entry.EventID exists yet. It reports false when
	// the condition failed: the user is gone or the event is already present.
	AppendRegistration(ctx context.Context, userID string, entry entity.RegistrationEntry) (bool, error)
	// GetUserByRegistrationCode finds the user holding code in their list.
	GetUserByRegistrationCode(ctx context.Context, code string) (*entity.User, error)

	SetPasswordResetToken(ctx context.Context, id string, tokenHash string, expiresAt time.Time) error
	ClearPasswordResetToken(ctx context.Context, id string) error
	// GetUserByResetToken returns the user whose unexpired reset token hash matches.
	GetUserByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error)
}
