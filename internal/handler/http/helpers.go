package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	"github.com/sumitgupta24/eventxpert-backend/internal/handler/http/dto"
	"github.com/sumitgupta24/eventxpert-backend/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// StatusFor maps a usecase error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrDuplicateRegistration),
		errors.Is(err, usecase.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidCredential),
		errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// HandleError writes the status and message for err and records it on the
// context for the request logger.
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)
	ErrorHandler(c, StatusFor(err), usecase.ClientMessage(err))
}

// currentUser reads the identity stored by the auth middleware.
func currentUser(c *gin.Context) (string, entity.UserRole, bool) {
	id := c.GetString("userID")
	if id == "" {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized, no token")
		return "", "", false
	}
	role, _ := c.Get("role")
	r, _ := role.(entity.UserRole)
	return id, r, true
}
