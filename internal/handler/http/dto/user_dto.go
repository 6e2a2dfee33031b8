package dto

import (
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Role           string `json:"role" binding:"omitempty,signuprole"`
	ProfilePicture string `json:"profilePicture"`
	Gender         string `json:"gender" binding:"omitempty,gender"`
	RollNo         string `json:"rollNo"`
	Department     string `json:"department"`
	SocietyName    string `json:"societyName"`
}

func (r CreateUserRequest) ToInput() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		Name:           r.Name,
		Email:          r.Email,
		Password:       r.Password,
		Role:           r.Role,
		ProfilePicture: r.ProfilePicture,
		Profile:        profileFields(r.Gender, r.RollNo, r.Department, r.SocietyName),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the body of PUT /api/users/profile. Absent fields are kept.
type UpdateProfileRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	ProfilePicture *string `json:"profilePicture"`
	Password       *string `json:"password"`
	Gender         string  `json:"gender" binding:"omitempty,gender"`
	RollNo         string  `json:"rollNo"`
	Department     string  `json:"department"`
	SocietyName    string  `json:"societyName"`
}

func (r UpdateProfileRequest) ToInput() usecasecontract.ProfileUpdate {
	return usecasecontract.ProfileUpdate{
		Name:           emptyAsNil(r.Name),
		Email:          emptyAsNil(r.Email),
		ProfilePicture: r.ProfilePicture,
		Password:       emptyAsNil(r.Password),
		Profile:        profileFields(r.Gender, r.RollNo, r.Department, r.SocietyName),
	}
}

// AdminUpdateUserRequest is the body of PUT /api/users/:id.
type AdminUpdateUserRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Role           *string `json:"role"`
	ProfilePicture *string `json:"profilePicture"`
	Gender         string  `json:"gender" binding:"omitempty,gender"`
	RollNo         string  `json:"rollNo"`
	Department     string  `json:"department"`
	SocietyName    string  `json:"societyName"`
}

func (r AdminUpdateUserRequest) ToInput() usecasecontract.AdminUserUpdate {
	return usecasecontract.AdminUserUpdate{
		Name:           emptyAsNil(r.Name),
		Email:          emptyAsNil(r.Email),
		Role:           emptyAsNil(r.Role),
		ProfilePicture: r.ProfilePicture,
		Profile:        profileFields(r.Gender, r.RollNo, r.Department, r.SocietyName),
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// UserResponse is the client view of a user.
type UserResponse struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	ProfilePicture string  `json:"profilePicture"`
	Gender         *string `json:"gender,omitempty"`
	RollNo         *string `json:"rollNo,omitempty"`
	Department     *string `json:"department,omitempty"`
	SocietyName    *string `json:"societyName,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// AuthResponse is a user plus the tokens issued for them.
type AuthResponse struct {
	UserResponse
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// TokenResponse is returned by refresh and OAuth login.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	resp := UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           string(user.Role),
		ProfilePicture: user.ProfilePicture,
		Gender:         user.Gender,
		RollNo:         user.RollNo,
		Department:     user.Department,
		SocietyName:    user.SocietyName,
	}
	if !user.CreatedAt.IsZero() {
		resp.CreatedAt = formatTime(user.CreatedAt)
	}
	return resp
}

func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(*u))
	}
	return out
}

func ToAuthResponse(user entity.User, accessToken, refreshToken string) AuthResponse {
	return AuthResponse{UserResponse: ToUserResponse(user), Token: accessToken, RefreshToken: refreshToken}
}

func profileFields(gender, rollNo, department, societyName string) entity.ProfileFields {
	return entity.ProfileFields{
		Gender:      strPtr(gender),
		RollNo:      strPtr(rollNo),
		Department:  strPtr(department),
		SocietyName: strPtr(societyName),
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyAsNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
