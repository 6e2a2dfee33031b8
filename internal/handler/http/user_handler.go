package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumitgupta24/eventxpert-backend/internal/handler/http/dto"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	Login(*gin.Context)
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
	GetRegisteredEvents(*gin.Context)
	ListUsers(*gin.Context)
	AdminUpdateUser(*gin.Context)
	DeleteUser(*gin.Context)
	ForgotPassword(*gin.Context)
	ResetPassword(*gin.Context)
	RefreshToken(*gin.Context)
	Logout(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase         usecasecontract.IUserUseCase
	registrationUsecase usecasecontract.IRegistrationUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, registrationUsecase usecasecontract.IRegistrationUseCase) *UserHandler {
	return &UserHandler{
		userUsecase:         userUsecase,
		registrationUsecase: registrationUsecase,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToAuthResponse(*user, accessToken, refreshToken))
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAuthResponse(*user, accessToken, refreshToken))
}

// GetProfile returns the authenticated user
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile handles updating the authenticated user's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAuthResponse(*user, accessToken, ""))
}

// GetRegisteredEvents lists the events the caller registered for
func (h *UserHandler) GetRegisteredEvents(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	entries, err := h.registrationUsecase.ListRegisteredEvents(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToRegisteredEventResponses(entries))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}

func (h *UserHandler) AdminUpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.AdminUpdateUser(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUsecase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User removed")
}

// ForgotPassword mails a reset link to the user
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.DataResponse{Success: true, Data: "Email Sent"})
}

// ResetPassword sets a new password using the mailed token
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.ResetPassword(c.Request.Context(), c.Param("resettoken"), req.Password, req.ConfirmPassword); err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.DataResponse{Success: true, Data: "Password reset successful"})
}

// RefreshToken rotates the refresh token
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	accessToken, refreshToken, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenResponse{Token: accessToken, RefreshToken: refreshToken})
}

// Logout revokes the given refresh token
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Logout successful")
}
