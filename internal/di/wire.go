//go:build wireinject
// +build wireinject

package di

import (
	"github.com/puglisirhys-create/buyzone/pkg/config"
	"github.com/puglisirhys-create/buyzone/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideCache,
		ProvideEventPublisher,

		// Ports
		ProvideSnapshotRepository,

		// Use cases
		ProvideWatchlistStore,
		ProvideHistoryUseCase,

		// HTTP surface and application server
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
