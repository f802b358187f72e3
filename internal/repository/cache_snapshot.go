package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
	domrepo "github.com/puglisirhys-create/buyzone/internal/domain/repository"
	"github.com/puglisirhys-create/buyzone/pkg/cache"
)

// snapshotKey is the fixed slot the watchlist blob lives under. It must
// never change: a rename orphans every previously saved list.
const snapshotKey = "watchlist"

// CacheSnapshotRepository stores the watchlist as one JSON array in any
// cache.Service backend (Redis in production, memory in tests).
type CacheSnapshotRepository struct {
	kv cache.Service
}

func NewCacheSnapshotRepository(kv cache.Service) *CacheSnapshotRepository {
	return &CacheSnapshotRepository{kv: kv}
}

// Load reads the snapshot slot. An absent slot and a slot holding
// malformed data are the same condition for callers: ErrNoSnapshot.
func (r *CacheSnapshotRepository) Load(ctx context.Context) ([]models.WatchEntry, error) {
	var raw string
	if err := r.kv.Get(ctx, snapshotKey, &raw); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, domrepo.ErrNoSnapshot
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}

	var entries []models.WatchEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, domrepo.ErrNoSnapshot
	}
	if entries == nil {
		// valid JSON but not an array ("null")
		return nil, domrepo.ErrNoSnapshot
	}
	return entries, nil
}

// Save overwrites the slot with the full current state. No expiration:
// the slot is durable, not a cache entry.
func (r *CacheSnapshotRepository) Save(ctx context.Context, entries []models.WatchEntry) error {
	if entries == nil {
		entries = []models.WatchEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("snapshot marshal: %w", err)
	}
	if err := r.kv.Set(ctx, snapshotKey, data, 0); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}
