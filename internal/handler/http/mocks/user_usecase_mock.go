package mocks

import (
	"context"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	"github.com/sumitgupta24/eventxpert-backend/internal/usecase"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser     bool
	ShouldFailLogin          bool
	ShouldFailGetByID        bool
	ShouldFailUpdateUser     bool
	ShouldFailForgotPassword bool
	ShouldFailResetPassword  bool
	ShouldFailRefreshToken   bool
	ShouldFailLogout         bool
	ShouldFailAuthenticate   bool
	ShouldFailListUsers      bool
	ShouldFailDeleteUser     bool
	ShouldFailLoginWithOAuth bool

	// Err, when set, replaces the default failure error.
	Err error

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string

	// Captured inputs
	LastRegister      usecasecontract.RegisterInput
	LastProfileUpdate usecasecontract.ProfileUpdate
	LastAdminUpdate   usecasecontract.AdminUserUpdate
	LastAccessToken   string
	LastResetToken    string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:               "mock-user-id",
			Name:             "Test Student",
			Email:            "test@example.com",
			Role:             entity.UserRoleStudent,
			ProfilePicture:   entity.DefaultProfilePicture,
			RegisteredEvents: []entity.RegistrationEntry{},
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) fail(def error) error {
	if m.Err != nil {
		return m.Err
	}
	return def
}

func (m *MockUserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, string, string, error) {
	m.LastRegister = in
	if m.ShouldFailCreateUser {
		return nil, "", "", m.fail(usecase.ErrConflict)
	}
	u := m.MockUser
	u.Name, u.Email = in.Name, in.Email
	return &u, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", m.fail(usecase.ErrUnauthorized)
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	m.LastAccessToken = accessToken
	if m.ShouldFailAuthenticate {
		return nil, m.fail(usecase.ErrUnauthorized)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", m.fail(usecase.ErrUnauthorized)
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.ShouldFailLogout {
		return m.fail(usecase.ErrStorage)
	}
	return nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	if m.ShouldFailLoginWithOAuth {
		return "", "", m.fail(usecase.ErrStorage)
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, m.fail(usecase.ErrUserNotFound)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, in usecasecontract.ProfileUpdate) (*entity.User, string, error) {
	m.LastProfileUpdate = in
	if m.ShouldFailUpdateUser {
		return nil, "", m.fail(usecase.ErrConflict)
	}
	u := m.MockUser
	if in.Name != nil {
		u.Name = *in.Name
	}
	return &u, m.MockAccessToken, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	if m.ShouldFailListUsers {
		return nil, m.fail(usecase.ErrStorage)
	}
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) AdminUpdateUser(ctx context.Context, userID string, in usecasecontract.AdminUserUpdate) (*entity.User, error) {
	m.LastAdminUpdate = in
	if m.ShouldFailUpdateUser {
		return nil, m.fail(usecase.ErrUserNotFound)
	}
	u := m.MockUser
	u.ID = userID
	if in.Role != nil {
		u.Role = entity.UserRole(*in.Role)
	}
	return &u, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.ShouldFailDeleteUser {
		return m.fail(usecase.ErrUserNotFound)
	}
	return nil
}

func (m *MockUserUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return m.fail(usecase.ErrEmailDelivery)
	}
	return nil
}

func (m *MockUserUsecase) ResetPassword(ctx context.Context, resetToken, password, confirmPassword string) error {
	m.LastResetToken = resetToken
	if m.ShouldFailResetPassword {
		return m.fail(usecase.ErrInvalidInput)
	}
	return nil
}
