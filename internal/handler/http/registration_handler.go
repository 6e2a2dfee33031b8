package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumitgupta24/eventxpert-backend/internal/handler/http/dto"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// RegistrationHandler serves event sign-up and check-in.
type RegistrationHandler struct {
	registrationUsecase usecasecontract.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecasecontract.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{registrationUsecase: uc}
}

// RegisterForEvent issues a registration code for the caller
func (h *RegistrationHandler) RegisterForEvent(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	code, err := h.registrationUsecase.RegisterForEvent(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.RegisterEventResponse{
		Message:          "Event registered successfully",
		RegistrationCode: code,
	})
}

// GetQRCode returns the caller's code for the event
func (h *RegistrationHandler) GetQRCode(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	code, err := h.registrationUsecase.GetRegistrationCode(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.QRCodeResponse{QRCode: code})
}

// VerifyQRCode resolves a scanned code to its event and attendee
func (h *RegistrationHandler) VerifyQRCode(c *gin.Context) {
	var req dto.VerifyCodeRequest
	// an empty body is reported as a missing code
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	v, err := h.registrationUsecase.VerifyRegistrationCode(c.Request.Context(), req.QRCode)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToVerifyCodeResponse("QR code verified successfully", v))
}
