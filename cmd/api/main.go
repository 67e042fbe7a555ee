// Command api runs the catalog HTTP server.
//
// Startup order: config, logger, database migrations, application
// container, repositories, services, handlers, middleware, router.
// The process stops on SIGINT/SIGTERM with a bounded graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fennelworks/catalog-api/internal/config"
	"github.com/fennelworks/catalog-api/internal/database"
	"github.com/fennelworks/catalog-api/internal/handler"
	loggerPkg "github.com/fennelworks/catalog-api/internal/logger"
	"github.com/fennelworks/catalog-api/internal/middleware"
	"github.com/fennelworks/catalog-api/internal/repository"
	"github.com/fennelworks/catalog-api/internal/router"
	"github.com/fennelworks/catalog-api/internal/server"
	"github.com/fennelworks/catalog-api/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Bootstrap logger for failures before the real logger exists.
	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log, loggerService, err := loggerPkg.New(cfg)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to initialize logger")
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := database.Migrate(migrateCtx, log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.New(handlers, middlewares))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}

	loggerService.Shutdown(10 * time.Second)
}
