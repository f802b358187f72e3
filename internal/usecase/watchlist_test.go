package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
	domrepo "github.com/puglisirhys-create/buyzone/internal/domain/repository"
	"github.com/puglisirhys-create/buyzone/internal/repository"
	"github.com/puglisirhys-create/buyzone/internal/signal"
	"github.com/puglisirhys-create/buyzone/pkg/cache"
	xlogger "github.com/puglisirhys-create/buyzone/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) RecordEntries(int)                 {}
func (nopMetrics) RecordSnapshotSave(bool)           {}
func (nopMetrics) RecordSnapshotLoad(string)         {}
func (nopMetrics) RecordSignalDerived(string)        {}
func (nopMetrics) RecordCandlesGenerated(string, int) {}
func (nopMetrics) RecordLatency(string, float64)     {}

type failingSnapshots struct {
	loadErr error
	saveErr error
	saved   [][]models.WatchEntry
}

func (f *failingSnapshots) Load(context.Context) ([]models.WatchEntry, error) {
	return nil, f.loadErr
}

func (f *failingSnapshots) Save(_ context.Context, entries []models.WatchEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := make([]models.WatchEntry, len(entries))
	copy(cp, entries)
	f.saved = append(f.saved, cp)
	return nil
}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestStore(t *testing.T, snapshots domrepo.SnapshotRepository, seed bool) *WatchlistStore {
	t.Helper()
	s := NewWatchlistStore(snapshots, repository.NoopEventPublisher{}, nopMetrics{}, testLogger(t), seed)
	return s
}

func TestLoadSeedsWhenSnapshotAbsent(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), true)
	s.Load(context.Background())

	entries, status := s.List()
	if len(entries) != 3 {
		t.Fatalf("want 3 seed entries, got %d", len(entries))
	}
	if status != "" {
		t.Fatalf("unexpected status %q", status)
	}
	// seeds carry derived signals, not hard-coded ones
	for _, e := range entries {
		want := signal.Derive(e.Ticker, e.Type)
		if e.Zone != want.Zone || e.Confidence != want.Confidence {
			t.Fatalf("seed %s signal mismatch: %+v", e.Ticker, e)
		}
	}
}

func TestLoadWithoutSeedsStartsEmpty(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), false)
	s.Load(context.Background())
	if entries, _ := s.List(); len(entries) != 0 {
		t.Fatalf("want empty store, got %d entries", len(entries))
	}
}

func TestLoadBackendFailureDegradesToSeeds(t *testing.T) {
	snaps := &failingSnapshots{loadErr: errors.New("redis down")}
	s := newTestStore(t, snaps, true)
	s.Load(context.Background())

	entries, status := s.List()
	if len(entries) != 3 {
		t.Fatalf("want seeds on backend failure, got %d", len(entries))
	}
	if status == "" {
		t.Fatalf("expected a visible status message")
	}
}

func TestAddNormalizesAndDerives(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), false)
	s.Load(context.Background())

	e, created, err := s.Add(context.Background(), "  b t c ", models.AssetCrypto, "note")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !created {
		t.Fatalf("expected creation")
	}
	if e.Ticker != "BTC" {
		t.Fatalf("ticker not normalized: %q", e.Ticker)
	}
	if e.Zone != models.ZoneNotAttractive || e.Confidence != 76 {
		t.Fatalf("signal not derived: %+v", e)
	}
	if e.ID == "" || e.AddedAt == 0 {
		t.Fatalf("identity not assigned: %+v", e)
	}
}

func TestAddIdempotent(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), false)
	s.Load(context.Background())
	ctx := context.Background()

	first, created, err := s.Add(ctx, "ETH", models.AssetCrypto, "original")
	if err != nil || !created {
		t.Fatalf("first add: %v created=%v", err, created)
	}
	second, created, err := s.Add(ctx, " eth", models.AssetCrypto, "changed note")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if created {
		t.Fatalf("duplicate identifier must be a no-op")
	}
	if second.ID != first.ID || second.Note != "original" {
		t.Fatalf("existing entry was altered: %+v", second)
	}
	if entries, _ := s.List(); len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
}

func TestAddSameTickerDifferentType(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), false)
	s.Load(context.Background())
	ctx := context.Background()

	if _, created, _ := s.Add(ctx, "GLD", models.AssetETF, ""); !created {
		t.Fatalf("first add should create")
	}
	if _, created, _ := s.Add(ctx, "GLD", models.AssetCrypto, ""); !created {
		t.Fatalf("same ticker under another type is a distinct identifier")
	}
	if entries, _ := s.List(); len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
}

func TestAddRejectsInvalidTickers(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), false)
	s.Load(context.Background())
	ctx := context.Background()

	for _, raw := range []string{"", "   ", "BAD$", "TOOLONGTOOLONGTOOLONG", "a_b"} {
		if _, _, err := s.Add(ctx, raw, models.AssetStock, ""); !errors.Is(err, ErrInvalidTicker) {
			t.Fatalf("%q: want ErrInvalidTicker, got %v", raw, err)
		}
	}
	if _, _, err := s.Add(ctx, "AAPL", models.AssetType("BOND"), ""); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("want ErrInvalidType, got %v", err)
	}
}

func TestRefreshPreservesIdentity(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), false)
	s.Load(context.Background())
	ctx := context.Background()

	added, _, err := s.Add(ctx, "SOL", models.AssetCrypto, "keep me")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	refreshed := s.Refresh(ctx)
	if len(refreshed) != 1 {
		t.Fatalf("refresh must not add or remove entries")
	}
	got := refreshed[0]
	if got.ID != added.ID || got.Note != added.Note || got.AddedAt != added.AddedAt {
		t.Fatalf("identity not preserved: %+v vs %+v", got, added)
	}
	want := signal.Derive("SOL", models.AssetCrypto)
	if got.Zone != want.Zone || got.Confidence != want.Confidence {
		t.Fatalf("signal not recomputed: %+v", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), false)
	s.Load(context.Background())
	ctx := context.Background()

	a, _, _ := s.Add(ctx, "AAA", models.AssetStock, "")
	s.Add(ctx, "BBB", models.AssetStock, "")

	s.Remove(ctx, a.ID)
	if entries, _ := s.List(); len(entries) != 1 || entries[0].Ticker != "BBB" {
		t.Fatalf("remove failed: %+v", entries)
	}

	s.Remove(ctx, "no-such-id") // silent no-op
	if entries, _ := s.List(); len(entries) != 1 {
		t.Fatalf("unknown id must be a no-op")
	}

	s.Clear(ctx)
	if entries, _ := s.List(); len(entries) != 0 {
		t.Fatalf("clear failed")
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t, repository.NewCacheSnapshotRepository(cache.NewMemoryCache()), false)
	ts := int64(1000)
	s.now = func() time.Time { ts++; return time.UnixMilli(ts) }
	s.Load(context.Background())
	ctx := context.Background()

	s.Add(ctx, "OLD", models.AssetStock, "")
	s.Add(ctx, "MID", models.AssetStock, "")
	s.Add(ctx, "NEW", models.AssetStock, "")

	entries, _ := s.List()
	if entries[0].Ticker != "NEW" || entries[2].Ticker != "OLD" {
		t.Fatalf("wrong order: %+v", entries)
	}
}

func TestNoPersistBeforeLoad(t *testing.T) {
	snaps := &failingSnapshots{loadErr: domrepo.ErrNoSnapshot}
	s := newTestStore(t, snaps, false)

	// mutation before Load must not write the slot
	s.Add(context.Background(), "BTC", models.AssetCrypto, "")
	if len(snaps.saved) != 0 {
		t.Fatalf("persisted before load: %d writes", len(snaps.saved))
	}
	if _, status := s.List(); status == "" {
		t.Fatalf("expected not-loaded status")
	}
}

func TestSaveFailureIsNonFatal(t *testing.T) {
	snaps := &failingSnapshots{loadErr: domrepo.ErrNoSnapshot, saveErr: errors.New("quota exceeded")}
	s := newTestStore(t, snaps, false)
	s.Load(context.Background())

	e, created, err := s.Add(context.Background(), "BTC", models.AssetCrypto, "")
	if err != nil || !created {
		t.Fatalf("add must succeed in memory: %v", err)
	}

	entries, status := s.List()
	if len(entries) != 1 || entries[0].ID != e.ID {
		t.Fatalf("in-memory state must stay authoritative")
	}
	if status == "" {
		t.Fatalf("save failure must surface a status message")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	kv := cache.NewMemoryCache()
	ctx := context.Background()

	s1 := newTestStore(t, repository.NewCacheSnapshotRepository(kv), false)
	s1.Load(ctx)
	s1.Add(ctx, "BTC", models.AssetCrypto, "a")
	s1.Add(ctx, "VOO", models.AssetETF, "b")

	s2 := newTestStore(t, repository.NewCacheSnapshotRepository(kv), true)
	s2.Load(ctx)

	want, _ := s1.List()
	got, _ := s2.List()
	if len(got) != len(want) {
		t.Fatalf("round trip lost entries: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d differs after reload: %+v vs %+v", i, want[i], got[i])
		}
	}
}
