package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/quicknote/notes-api/internal/api"
	"github.com/quicknote/notes-api/internal/core/service"
	"github.com/quicknote/notes-api/internal/infrastructure/config"
	mongodb "github.com/quicknote/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/quicknote/notes-api/internal/infrastructure/db/redis"
	"github.com/quicknote/notes-api/internal/infrastructure/queue"
	"github.com/quicknote/notes-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Refuse to start without a signing secret.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := noteRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create note indexes")
	}
	if err := activityRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create activity indexes")
	}

	// --- Services ---
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)

	// Workers run on their own context so events enqueued by requests still
	// draining during shutdown are recorded before the pool stops.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher.Start(workerCtx)

	limiter := redisdb.NewLoginLimiter(rdb)
	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, cfg.TokenTTL)
	noteService := service.NewNoteService(noteRepo, userRepo, dispatcher, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		AuthService:     authService,
		NoteService:     noteService,
		ActivityService: activityService,
		JWTSecret:       cfg.JWTSecret,
		Mongo:           db,
		Redis:           rdb,
		Logger:          log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	stopWorkers()
}
