package repository

import (
	"context"
	"errors"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
)

// ErrNoSnapshot signals that the snapshot slot is absent or holds data
// the store cannot read. Callers degrade to defaults, never fail.
var ErrNoSnapshot = errors.New("repository: no usable snapshot")

// SnapshotRepository persists the full watchlist as a single blob under
// a fixed key. The key must never change: renaming it orphans every
// previously saved list.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]models.WatchEntry, error)
	Save(ctx context.Context, entries []models.WatchEntry) error
}

// EventPublisher emits watchlist mutation events.
type EventPublisher interface {
	Publish(ctx context.Context, ev models.WatchEvent) error
	Close() error
}

// Metrics abstracts the counters the store and generator record.
type Metrics interface {
	RecordEntries(n int)
	RecordSnapshotSave(ok bool)
	RecordSnapshotLoad(result string)
	RecordSignalDerived(typ string)
	RecordCandlesGenerated(symbol string, n int)
	RecordLatency(op string, seconds float64)
}
