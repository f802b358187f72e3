package di

import (
	"fmt"

	domrepo "github.com/puglisirhys-create/buyzone/internal/domain/repository"
	"github.com/puglisirhys-create/buyzone/internal/handler/api"
	internalrepo "github.com/puglisirhys-create/buyzone/internal/repository"
	"github.com/puglisirhys-create/buyzone/internal/usecase"
	"github.com/puglisirhys-create/buyzone/pkg/cache"
	"github.com/puglisirhys-create/buyzone/pkg/config"
	xhttp "github.com/puglisirhys-create/buyzone/pkg/http"
	pkgkafka "github.com/puglisirhys-create/buyzone/pkg/kafka"
	xlogger "github.com/puglisirhys-create/buyzone/pkg/logger"
	"github.com/puglisirhys-create/buyzone/pkg/metrics"
	"github.com/puglisirhys-create/buyzone/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	lc := &xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return xlogger.New(lc)
}

// ProvideCache creates the key-value backend: Redis when configured,
// process memory otherwise (state then lives only as long as the
// process, which is fine for local runs and tests).
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	kv, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
		cache.WithRedisPrefix(cfg.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return kv, nil
}

// ProvideMetrics creates the Prometheus recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideSnapshotRepository creates the watchlist snapshot port.
func ProvideSnapshotRepository(kv cache.Service) domrepo.SnapshotRepository {
	return internalrepo.NewCacheSnapshotRepository(kv)
}

// ProvideEventPublisher creates the Kafka mutation-event publisher, or
// a no-op when no broker is configured.
func ProvideEventPublisher(cfg *config.Config) (domrepo.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopEventPublisher{}, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.Acks),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaEventPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideWatchlistStore creates the store with all its ports.
func ProvideWatchlistStore(
	cfg *config.Config,
	snapshots domrepo.SnapshotRepository,
	events domrepo.EventPublisher,
	m domrepo.Metrics,
	logger *xlogger.Logger,
) *usecase.WatchlistStore {
	return usecase.NewWatchlistStore(snapshots, events, m, logger, cfg.Watchlist.SeedDefaults)
}

// ProvideHistoryUseCase creates the candle history use case.
func ProvideHistoryUseCase(m domrepo.Metrics) *usecase.HistoryUseCase {
	return usecase.NewHistoryUseCase(m)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(logger *xlogger.Logger, store *usecase.WatchlistStore, history *usecase.HistoryUseCase) xhttp.Handler {
	return api.NewWatchEchoHandler(logger, store, history)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *xlogger.Logger,
	store *usecase.WatchlistStore,
	handler xhttp.Handler,
	kv cache.Service,
	events domrepo.EventPublisher,
) *server.App {
	return server.New(cfg, logger, store, handler, kv, events)
}
