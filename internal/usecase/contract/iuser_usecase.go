package usecasecontract

import (
	"context"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

// RegisterInput carries the self-service sign-up form.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	ProfilePicture string
	Profile        entity.ProfileFields
}

// ProfileUpdate carries a user's edits to their own profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	ProfilePicture *string
	Password       *string
	Profile        entity.ProfileFields
}

// AdminUserUpdate carries an administrator's edits to any user.
type AdminUserUpdate struct {
	Name           *string
	Email          *string
	Role           *string
	ProfilePicture *string
	Profile        entity.ProfileFields
}

// UserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*entity.User, string, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	LoginWithOAuth(ctx context.Context, name, email string) (string, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*entity.User, string, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	AdminUpdateUser(ctx context.Context, userID string, in AdminUserUpdate) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password, confirmPassword string) error
}
