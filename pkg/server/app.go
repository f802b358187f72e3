package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "github.com/puglisirhys-create/buyzone/internal/domain/repository"
	"github.com/puglisirhys-create/buyzone/internal/usecase"
	"github.com/puglisirhys-create/buyzone/pkg/cache"
	"github.com/puglisirhys-create/buyzone/pkg/config"
	xhttp "github.com/puglisirhys-create/buyzone/pkg/http"
	xlogger "github.com/puglisirhys-create/buyzone/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *xlogger.Logger
	store      *usecase.WatchlistStore
	handler    xhttp.Handler
	kv         cache.Service
	events     domrepo.EventPublisher
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *xlogger.Logger,
	store *usecase.WatchlistStore,
	handler xhttp.Handler,
	kv cache.Service,
	events domrepo.EventPublisher,
) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		handler: handler,
		kv:      kv,
		events:  events,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load before the server accepts traffic: no mutation may persist
	// until the saved snapshot has had its chance to win.
	a.store.Load(ctx)
	entries, _ := a.store.List()
	a.logger.Info("watchlist loaded", xlogger.Int("entries", len(entries)))

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", xlogger.Error(err))
		return err
	}
	a.logger.Info("http server started", xlogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", xlogger.Error(err))
	}

	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.logger.Warn("event publisher close error", xlogger.Error(err))
		}
	}

	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			a.logger.Warn("cache close error", xlogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
