package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/config"
	database "github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/database"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/logger"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/repository/mongodb"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/uuidgen"
)

func main() {
	destroy := flag.Bool("d", false, "delete all categories instead of seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}
	cfg := config.NewConfig()
	zl := logger.New(cfg.Logging)
	if cfg.MongoURI == "" || cfg.MongoDBName == "" {
		zl.Fatal().Msg("MONGODB_URI and MONGODB_DB_NAME must be set")
	}

	client, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	db := client.Client.Database(cfg.MongoDBName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	code := run(ctx, &seeder{
		categories: mongodb.NewCategoryRepository(db),
		settings:   mongodb.NewSettingRepository(db),
		ids:        uuidgen.NewGenerator(),
		now:        time.Now,
	}, *destroy, zl)
	cancel()

	if err := client.Disconnect(); err != nil {
		zl.Error().Err(err).Msg("mongo disconnect")
	}
	os.Exit(code)
}

func run(ctx context.Context, s *seeder, destroy bool, zl zerolog.Logger) int {
	if destroy {
		if err := s.destroyData(ctx); err != nil {
			zl.Error().Err(err).Msg("failed to destroy data")
			return 1
		}
		zl.Info().Msg("data destroyed")
		return 0
	}
	categories, settings, err := s.importData(ctx)
	if err != nil {
		zl.Error().Err(err).Msg("failed to import data")
		return 1
	}
	zl.Info().Int("categories", categories).Int("settings", settings).Msg("data imported")
	return 0
}
