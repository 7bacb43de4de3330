package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gearshift/cmd/app"
	"gearshift/internal/config"
	handlers "gearshift/internal/handler"
	"gearshift/internal/jobs"
	"gearshift/internal/middleware"
	"gearshift/internal/view"
)

func setupLogger(cfg *config.Config) {
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func main() {
	// setting up config
	cfg := config.LoadConfig()
	setupLogger(cfg)

	ctx := context.Background()
	repo, services := app.App(ctx, cfg)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse page templates")
	}

	handler := handlers.NewHandlers(repo, services, renderer, cfg)
	router := handlers.NewRouter(handler)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	handlerChain := app.Handler(cfg, router, rateLimiter)

	cleanup := jobs.NewSessionCleanupJob(repo.Session, rateLimiter, cfg.Session.TTL, cfg.Session.CleanupInterval)
	cleanup.Start()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      handlerChain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Starting the server
	go func() {
		log.Info().Str("address", srv.Addr).Msgf("GearShift Society running at http://localhost:%d/", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	cleanup.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
