package main // Entry point package

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"    // godotenv loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/rs/zerolog"       // zerolog structured logging

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/config"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/database"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/handler"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/middleware"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/queue"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/recommend"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/router"
	queue_publisher "github.com/tejaspatni/Book-Recommendation-Management-System/internal/service"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/summarize"
)

func main() {
	_ = godotenv.Load() // pick up a .env file when present; real env always wins

	cfg := config.Load() // load environment config; missing required vars are fatal

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "book-catalog").Logger()
	if cfg.Env == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Open the relational store and make sure the schema exists before serving.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("schema setup failed")
	}
	cancel()

	// Load the trained recommendation model. The process refuses to start
	// without it: serving /recommendations with no predictor is not an option.
	forest, err := recommend.LoadForest(cfg.ModelPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.ModelPath).Msg("recommendation model load failed")
	}
	scorer := recommend.NewScorer(forest.Genres, forest, logger)
	logger.Info().Int("genres", len(forest.Genres)).Str("path", cfg.ModelPath).Msg("recommendation model loaded")

	summarizer := summarize.NewClient(cfg.SummarizerURL, time.Duration(cfg.SummarizerTimeout)*time.Second, logger)

	// Redis backs the response cache and the rate limiter; a nil client
	// disables both instead of failing startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn().Msg("redis unavailable; response cache and rate limiting disabled")
	}

	// Consume review.created events for the process lifetime.
	go func() {
		if err := queue.StartReviewConsumer(logger); err != nil {
			logger.Error().Err(err).Msg("review consumer stopped")
		}
	}()

	bookRepo := repository.NewBookRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	recRepo := repository.NewRecommendationRepo(db)

	bookHandler := handler.NewBookHandler(bookRepo)
	reviewHandler := handler.NewReviewHandler(reviewRepo, queue_publisher.PublishReviewCreated, logger)
	recHandler := handler.NewRecommendationHandler(recRepo, scorer)
	summaryHandler := handler.NewSummaryHandler(summarizer, bookRepo)

	e := echo.New()                      // Create Echo instance
	e.HideBanner = true                  // startup info goes through the structured logger
	e.Validator = handler.NewValidator() // payload validation for bind+validate handlers

	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)) // distributed token bucket
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))      // GET response cache

	router.RegisterRoutes(e) // health check
	router.RegisterCatalog(e, bookHandler, reviewHandler, recHandler, summaryHandler)

	addr := ":" + cfg.Port // Address string with port
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")

	if err := e.Start(addr); err != nil { // Start HTTP server
		logger.Fatal().Err(err).Msg("server stopped") // Log and exit if server fails
	}
}
