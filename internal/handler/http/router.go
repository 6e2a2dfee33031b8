package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	"github.com/sumitgupta24/eventxpert-backend/internal/handler/http/middleware"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// RouterDeps are the usecases and settings the HTTP layer is built from.
type RouterDeps struct {
	UserUsecase         usecasecontract.IUserUseCase
	EventUsecase        usecasecontract.IEventUseCase
	RegistrationUsecase usecasecontract.IRegistrationUseCase
	CategoryUsecase     usecasecontract.ICategoryUseCase
	SettingUsecase      usecasecontract.ISettingUseCase
	AdminUsecase        usecasecontract.IAdminUseCase

	Logger             zerolog.Logger
	AllowedOrigins     []string
	RateLimitPerSecond float64
	BaseURL            string
	GoogleClientID     string
	GoogleClientSecret string
	// HealthCheck reports whether the database answers. Nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

type Router struct {
	userHandler         *UserHandler
	authHandler         *AuthHandler
	eventHandler        *EventHandler
	registrationHandler *RegistrationHandler
	adminHandler        *AdminHandler
	userUsecase         usecasecontract.IUserUseCase
	deps                RouterDeps
}

func NewRouter(deps RouterDeps) *Router {
	return &Router{
		userHandler:         NewUserHandler(deps.UserUsecase, deps.RegistrationUsecase),
		authHandler:         NewAuthHandler(deps.UserUsecase, deps.BaseURL, deps.GoogleClientID, deps.GoogleClientSecret),
		eventHandler:        NewEventHandler(deps.EventUsecase),
		registrationHandler: NewRegistrationHandler(deps.RegistrationUsecase),
		adminHandler:        NewAdminHandler(deps.CategoryUsecase, deps.SettingUsecase, deps.AdminUsecase),
		userUsecase:         deps.UserUsecase,
		deps:                deps,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	origins := r.deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestLogger(r.deps.Logger))
	router.Use(middleware.Metrics())
	// rate limiter configuration
	if r.deps.RateLimitPerSecond > 0 {
		router.Use(middleware.RateLimiter(middleware.NewLimiter(r.deps.RateLimitPerSecond)))
	}

	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "API is running...") })
	router.GET("/healthz", r.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protect := middleware.AuthMiddleWare(r.userUsecase)
	admin := middleware.RequireRole(entity.UserRoleAdmin)
	organizer := middleware.RequireRole(entity.UserRoleOrganizer)
	organizerOrAdmin := middleware.RequireRole(entity.UserRoleOrganizer, entity.UserRoleAdmin)

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.POST("", r.userHandler.CreateUser)
		users.GET("", protect, admin, r.userHandler.ListUsers)
		users.POST("/login", r.userHandler.Login)
		users.POST("/refresh-token", r.userHandler.RefreshToken)
		users.POST("/logout", r.userHandler.Logout)
		users.POST("/forgotpassword", r.userHandler.ForgotPassword)
		users.PUT("/resetpassword/:resettoken", r.userHandler.ResetPassword)

		// Google OAuth endpoints
		users.GET("/google/login", r.authHandler.HandleGoogleLogin)
		users.GET("/google/callback", r.authHandler.HandleGoogleCallback)

		users.GET("/registeredevents", protect, r.userHandler.GetRegisteredEvents)
		users.GET("/profile", protect, r.userHandler.GetProfile)
		users.PUT("/profile", protect, r.userHandler.UpdateProfile)
		users.PUT("/:id", protect, admin, r.userHandler.AdminUpdateUser)
		users.DELETE("/:id", protect, admin, r.userHandler.DeleteUser)
	}

	events := api.Group("/events")
	{
		events.GET("", r.eventHandler.ListEvents)
		events.POST("", protect, organizer, r.eventHandler.CreateEvent)
		events.GET("/myevents", protect, organizer, r.eventHandler.ListMyEvents)
		events.GET("/pending", protect, admin, r.eventHandler.ListPendingEvents)
		events.POST("/verifyqr", protect, organizer, r.registrationHandler.VerifyQRCode)
		events.GET("/:id", r.eventHandler.GetEvent)
		events.PUT("/:id", protect, organizer, r.eventHandler.UpdateEvent)
		events.DELETE("/:id", protect, organizerOrAdmin, r.eventHandler.DeleteEvent)
		events.POST("/:id/register", protect, r.registrationHandler.RegisterForEvent)
		events.GET("/:id/qrcode", protect, r.registrationHandler.GetQRCode)
		events.PUT("/:id/approve", protect, admin, r.eventHandler.ApproveEvent)
		events.PUT("/:id/reject", protect, admin, r.eventHandler.RejectEvent)
	}

	categories := api.Group("/categories", protect)
	{
		categories.GET("", r.adminHandler.ListCategories)
		categories.POST("", admin, r.adminHandler.CreateCategory)
		categories.PUT("/:id", admin, r.adminHandler.UpdateCategory)
		categories.DELETE("/:id", admin, r.adminHandler.DeleteCategory)
	}

	settings := api.Group("/settings", protect, admin)
	{
		settings.GET("", r.adminHandler.ListSettings)
		settings.PUT("/:id", r.adminHandler.UpdateSetting)
	}

	adminRoutes := api.Group("/admin", protect, admin)
	{
		adminRoutes.GET("/stats", r.adminHandler.GetStats)
		adminRoutes.GET("/event-category-counts", r.adminHandler.GetEventCategoryCounts)
		adminRoutes.GET("/event-month-counts", r.adminHandler.GetEventMonthCounts)
	}
}

func (r *Router) health(c *gin.Context) {
	if r.deps.HealthCheck != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := r.deps.HealthCheck(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
