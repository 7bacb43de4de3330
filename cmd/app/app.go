package app

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"gearshift/internal/config"
	"gearshift/internal/middleware"
	"gearshift/internal/repository"
	"gearshift/internal/seed"
	"gearshift/internal/service"
	"gearshift/internal/state"
	"gearshift/internal/storage"
)

// App wires the session store and services. Every new visitor session starts
// from the seeded rides and meetups.
func App(ctx context.Context, cfg *config.Config) (*repository.Repository, *service.Service) {
	var images storage.ImageStorage
	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize MinIO")
		}
		images = minioClient
		log.Info().Str("bucket", cfg.MinIO.BucketName).Msg("hero image uploads enabled")
	} else {
		log.Info().Msg("MINIO_ENDPOINT not set, hero image uploads disabled")
	}

	repo := repository.NewRepository(func() state.State {
		return state.New(seed.Rides(), seed.Meetups())
	})

	services := service.NewService(repo, cfg, images)

	return repo, services
}

// Handler wraps the router in the middleware stack. From the outside in:
// session cookie, request log, panic recovery, CORS, submission rate limit.
func Handler(cfg *config.Config, router http.Handler, rateLimiter *middleware.RateLimiter) http.Handler {
	return middleware.Chain(
		router,
		rateLimiter.Middleware,
		middleware.CORSMiddleware,
		middleware.RecoveryMiddleware,
		middleware.LoggingMiddleware,
		middleware.SessionMiddleware(cfg.Session),
	)
}
