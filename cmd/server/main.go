// @title        Mount Kigali Grading System API
// @version      1.0
// @description  AI-assisted grading and study-guide backend with role-based access.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ninzizah/mount-kigali-grading-system/internal/api"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/service"
	"github.com/ninzizah/mount-kigali-grading-system/internal/infrastructure/ai/gemini"
	"github.com/ninzizah/mount-kigali-grading-system/internal/infrastructure/config"
	mongodb "github.com/ninzizah/mount-kigali-grading-system/internal/infrastructure/db/mongo"
	redisdb "github.com/ninzizah/mount-kigali-grading-system/internal/infrastructure/db/redis"
	"github.com/ninzizah/mount-kigali-grading-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Stores: opened here, closed at shutdown ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	model, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client failed")
	}

	// --- Repositories & services ---
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)
	userService := service.NewUserService(userRepo, service.AdminIdentity{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log)
	assessmentService := service.NewAssessmentService(model, log)

	e := api.NewRouter(api.Dependencies{
		Users:       userService,
		Sessions:    sessions,
		Assessments: assessmentService,
		Mongo:       db,
		Redis:       rdb,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}

	log.Info().Msg("server exited")
}
