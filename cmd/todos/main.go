package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/go-todos/internal/config"
	"github.com/deppfellow/go-todos/internal/handler"
	"github.com/deppfellow/go-todos/internal/logger"
	"github.com/deppfellow/go-todos/internal/repository"
	"github.com/deppfellow/go-todos/internal/router"
	"github.com/deppfellow/go-todos/internal/server"
	"github.com/deppfellow/go-todos/internal/service"
)

// ShutdownTimeout is how long in-flight requests get to finish on SIGINT/SIGTERM.
const ShutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Fatal exits with status 1 before any connection is made.
		bootstrap := logger.NewBootstrapLogger()
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Observability)

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
