package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mentorhub/mentorhub-backend/internal/config"
	"github.com/mentorhub/mentorhub-backend/internal/database"
	"github.com/mentorhub/mentorhub-backend/internal/handler"
	"github.com/mentorhub/mentorhub-backend/internal/logger"
	"github.com/mentorhub/mentorhub-backend/internal/mailer"
	"github.com/mentorhub/mentorhub-backend/internal/repository"
	"github.com/mentorhub/mentorhub-backend/internal/router"
	"github.com/mentorhub/mentorhub-backend/internal/service"
	"github.com/mentorhub/mentorhub-backend/internal/validator"
	"github.com/mentorhub/mentorhub-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting MentorHub Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	teacherRepo := repository.NewTeacherRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	groupRepo := repository.NewGroupRepository(pool)
	solutionRepo := repository.NewSolutionRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	teacherService := service.NewTeacherService(cfg, teacherRepo, studentRepo, groupRepo, accountRepo, rdb)
	studentService := service.NewStudentService(cfg, studentRepo, groupRepo, accountRepo)
	groupService := service.NewGroupService(groupRepo)
	solutionService := service.NewSolutionService(solutionRepo)
	commentService := service.NewCommentService(commentRepo, solutionRepo)
	mediaService := service.NewMediaService(cfg)

	mail := mailer.FromConfig(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:     handler.NewAuthHandler(authService, teacherService, studentService, mail),
		Teacher:  handler.NewTeacherHandler(teacherService),
		Student:  handler.NewStudentHandler(studentService),
		Group:    handler.NewGroupHandler(groupService, studentService),
		Solution: handler.NewSolutionHandler(solutionService),
		Comment:  handler.NewCommentHandler(commentService),
		Avatar:   handler.NewAvatarHandler(mediaService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	sweeper := worker.NewTokenSweeper(pool, cfg.ResetSweepInterval, log)
	go sweeper.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
