package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	handlerHttp "github.com/sumitgupta24/eventxpert-backend/internal/handler/http"
	redisclient "github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/cache"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/config"
	database "github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/database"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/external_services"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/jwt"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/logger"
	passwordservice "github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/password_service"
	randomgenerator "github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/random_generator"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/repository/mongodb"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/store"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/uuidgen"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/validator"
	"github.com/sumitgupta24/eventxpert-backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	zl := logger.New(appConfig.Logging)
	if err := appConfig.Validate(); err != nil {
		zl.Fatal().Err(err).Msg("invalid configuration")
	}
	appLogger := logger.NewAppLogger(zl)

	// Register custom validators
	validator.RegisterCustomValidators()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	db := mongoClient.Client.Database(appConfig.MongoDBName)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		zl.Fatal().Err(err).Msg("failed to create indexes")
	}
	cancelIndexes()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	tokenRepo := mongodb.NewTokenRepository(db.Collection("tokens"))
	eventRepo := mongodb.NewEventRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	settingRepo := mongodb.NewSettingRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.JWTIssuer, appConfig.AccessTokenExpiry, appConfig.RefreshTokenExpiry)
	jwtService := jwt.NewJWTService(jwtManager)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	mailService, err := external_services.NewMailer(appConfig.Email, zl)
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to configure email")
	}

	var imageUploader contract.IImageUploader
	if appConfig.Cloudinary.Enabled() {
		cld, err := external_services.NewCloudinaryUploader(appConfig.Cloudinary.CloudName, appConfig.Cloudinary.APIKey, appConfig.Cloudinary.APISecret)
		if err != nil {
			zl.Fatal().Err(err).Msg("failed to configure cloudinary")
		}
		imageUploader = cld
	} else {
		zl.Warn().Msg("cloudinary credentials not set, image uploads are disabled")
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, tokenRepo, hasher, jwtService, mailService, imageUploader, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator)
	eventUsecase := usecase.NewEventUsecase(eventRepo, uuidGenerator, imageUploader, appLogger)
	registrationUsecase := usecase.NewRegistrationUsecase(userRepo, eventRepo, uuidGenerator, appLogger)
	categoryUsecase := usecase.NewCategoryUsecase(categoryRepo, uuidGenerator, appLogger)
	settingUsecase := usecase.NewSettingUsecase(settingRepo)
	adminUsecase := usecase.NewAdminUsecase(userRepo, eventRepo, categoryRepo)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		if err != nil {
			zl.Warn().Err(err).Msg("redis unavailable, event cache disabled")
		} else {
			defer redisclient.Close(rdb)
			eventUsecase.SetEventCache(store.NewEventCacheStore(rdb, appConfig.EventCacheTTL))
			zl.Info().Msg("event cache enabled")
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter := handlerHttp.NewRouter(handlerHttp.RouterDeps{
		UserUsecase:         userUsecase,
		EventUsecase:        eventUsecase,
		RegistrationUsecase: registrationUsecase,
		CategoryUsecase:     categoryUsecase,
		SettingUsecase:      settingUsecase,
		AdminUsecase:        adminUsecase,
		Logger:              zl,
		AllowedOrigins:      appConfig.CORSAllowedOrigins,
		RateLimitPerSecond:  appConfig.RateLimitPerSecond,
		BaseURL:             appConfig.AppBaseURL,
		GoogleClientID:      appConfig.Google.ClientID,
		GoogleClientSecret:  appConfig.Google.ClientSecret,
		HealthCheck: func(ctx context.Context) error {
			return mongoClient.Client.Ping(ctx, nil)
		},
	})
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info().Str("port", appConfig.Port).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error().Err(err).Msg("forced shutdown")
	}
	if err := mongoClient.Disconnect(); err != nil {
		zl.Error().Err(err).Msg("mongo disconnect")
	}
}
