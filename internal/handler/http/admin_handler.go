package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumitgupta24/eventxpert-backend/internal/handler/http/dto"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// AdminHandler serves categories, system settings and dashboard stats.
type AdminHandler struct {
	categoryUsecase usecasecontract.ICategoryUseCase
	settingUsecase  usecasecontract.ISettingUseCase
	adminUsecase    usecasecontract.IAdminUseCase
}

func NewAdminHandler(categories usecasecontract.ICategoryUseCase, settings usecasecontract.ISettingUseCase, admin usecasecontract.IAdminUseCase) *AdminHandler {
	return &AdminHandler{
		categoryUsecase: categories,
		settingUsecase:  settings,
		adminUsecase:    admin,
	}
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.ListCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCategoryResponses(categories))
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.categoryUsecase.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.CategoryResponse{ID: category.ID, Name: category.Name})
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.categoryUsecase.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CategoryResponse{ID: category.ID, Name: category.Name})
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUsecase.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Category removed")
}

func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingUsecase.ListSettings(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToSettingResponses(settings))
}

func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	var req dto.SettingRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	setting, err := h.settingUsecase.UpdateSetting(c.Request.Context(), c.Param("id"), req.SettingValue)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToSettingResponse(setting))
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUsecase.GetStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}

func (h *AdminHandler) GetEventCategoryCounts(c *gin.Context) {
	counts, err := h.adminUsecase.GetEventCategoryCounts(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, counts)
}

func (h *AdminHandler) GetEventMonthCounts(c *gin.Context) {
	counts, err := h.adminUsecase.GetEventMonthCounts(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, counts)
}
