package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
	domrepo "github.com/puglisirhys-create/buyzone/internal/domain/repository"
	"github.com/puglisirhys-create/buyzone/pkg/cache"
)

func TestSnapshotRoundTrip(t *testing.T) {
	kv := cache.NewMemoryCache()
	repo := NewCacheSnapshotRepository(kv)
	ctx := context.Background()

	in := []models.WatchEntry{
		{ID: "1", Ticker: "BTC", Type: models.AssetCrypto, Note: "dip", AddedAt: 1700000000000, Zone: models.ZoneNotAttractive, Confidence: 76},
		{ID: "2", Ticker: "AAPL", Type: models.AssetStock, AddedAt: 1700000000001, Zone: models.ZoneApproaching, Confidence: 36},
	}

	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("want %d entries, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, in[i], out[i])
		}
	}
}

func TestSnapshotAbsent(t *testing.T) {
	repo := NewCacheSnapshotRepository(cache.NewMemoryCache())
	if _, err := repo.Load(context.Background()); !errors.Is(err, domrepo.ErrNoSnapshot) {
		t.Fatalf("want ErrNoSnapshot, got %v", err)
	}
}

func TestSnapshotMalformed(t *testing.T) {
	kv := cache.NewMemoryCache()
	ctx := context.Background()
	repo := NewCacheSnapshotRepository(kv)

	for _, junk := range []string{"{not json", `"a string"`, "null", `{"an":"object"}`} {
		if err := kv.Set(ctx, "watchlist", junk, 0); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := repo.Load(ctx); !errors.Is(err, domrepo.ErrNoSnapshot) {
			t.Fatalf("%q: want ErrNoSnapshot, got %v", junk, err)
		}
	}
}

func TestSnapshotSaveNilBecomesEmptyList(t *testing.T) {
	kv := cache.NewMemoryCache()
	repo := NewCacheSnapshotRepository(kv)
	ctx := context.Background()

	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty list, got %d", len(out))
	}
}
