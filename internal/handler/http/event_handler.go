package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumitgupta24/eventxpert-backend/internal/handler/http/dto"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

type EventHandler struct {
	eventUsecase usecasecontract.IEventUseCase
}

func NewEventHandler(eventUsecase usecasecontract.IEventUseCase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// ListEvents returns approved events matching the query string
func (h *EventHandler) ListEvents(c *gin.Context) {
	var q dto.EventQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	events, err := h.eventUsecase.ListPublicEvents(c.Request.Context(), q.ToQuery())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponses(events))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventUsecase.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) bindEvent(c *gin.Context) (usecasecontract.EventInput, bool) {
	var req dto.EventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return usecasecontract.EventInput{}, false
	}
	in, err := req.ToInput()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return usecasecontract.EventInput{}, false
	}
	return in, true
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	in, ok := h.bindEvent(c)
	if !ok {
		return
	}
	event, err := h.eventUsecase.CreateEvent(c.Request.Context(), userID, in)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToEventResponse(event))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	in, ok := h.bindEvent(c)
	if !ok {
		return
	}
	event, err := h.eventUsecase.UpdateEvent(c.Request.Context(), c.Param("id"), userID, in)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.eventUsecase.DeleteEvent(c.Request.Context(), c.Param("id"), userID, role); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Event removed")
}

func (h *EventHandler) ListMyEvents(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	events, err := h.eventUsecase.ListMyEvents(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponses(events))
}

func (h *EventHandler) ListPendingEvents(c *gin.Context) {
	events, err := h.eventUsecase.ListPendingEvents(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponses(events))
}

func (h *EventHandler) ApproveEvent(c *gin.Context) {
	event, err := h.eventUsecase.ApproveEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) RejectEvent(c *gin.Context) {
	event, err := h.eventUsecase.RejectEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(event))
}
