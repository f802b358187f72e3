package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
	domrepo "github.com/puglisirhys-create/buyzone/internal/domain/repository"
	"github.com/puglisirhys-create/buyzone/internal/signal"
	xlogger "github.com/puglisirhys-create/buyzone/pkg/logger"
)

var (
	ErrInvalidTicker = errors.New("watchlist: ticker is empty or has invalid characters")
	ErrInvalidType   = errors.New("watchlist: unknown asset type")
	ErrNotLoaded     = errors.New("watchlist: store not loaded yet")
)

// tickerPattern is applied after normalization: letters, digits, dot,
// dash, at most 15 characters.
var tickerPattern = regexp.MustCompile(`^[A-Z0-9.-]{1,15}$`)

type storeState int

const (
	stateUninitialized storeState = iota
	stateLoaded
	stateLoadFailed
)

// WatchlistStore owns the ordered collection of watched assets. Every
// mutation runs under one mutex and rewrites the full snapshot slot, so
// add/remove/refresh stay read-modify-write atomic. Persistence is
// refused until Load has run: the seed state must never clobber a real
// saved snapshot during startup.
type WatchlistStore struct {
	mu      sync.Mutex
	entries []models.WatchEntry
	state   storeState
	status  string

	snapshots domrepo.SnapshotRepository
	events    domrepo.EventPublisher
	metrics   domrepo.Metrics
	logger    *xlogger.Logger

	seedDefaults bool
	now          func() time.Time
	newID        func() string
}

func NewWatchlistStore(
	snapshots domrepo.SnapshotRepository,
	events domrepo.EventPublisher,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
	seedDefaults bool,
) *WatchlistStore {
	return &WatchlistStore{
		snapshots:    snapshots,
		events:       events,
		metrics:      metrics,
		logger:       logger,
		seedDefaults: seedDefaults,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Load moves the store out of Uninitialized. An absent or unreadable
// snapshot degrades to the seed set; only a hard backend failure marks
// the store LoadFailed, and even that is not fatal.
func (s *WatchlistStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.snapshots.Load(ctx)
	switch {
	case err == nil:
		s.entries = entries
		s.state = stateLoaded
		s.metrics.RecordSnapshotLoad("loaded")
	case errors.Is(err, domrepo.ErrNoSnapshot):
		s.entries = s.seedEntries()
		s.state = stateLoaded
		s.metrics.RecordSnapshotLoad("absent")
	default:
		s.entries = s.seedEntries()
		s.state = stateLoadFailed
		s.status = "could not read saved watchlist, starting from defaults"
		s.metrics.RecordSnapshotLoad("error")
		s.logger.Warn("watchlist load failed", xlogger.Error(err))
	}
	s.metrics.RecordEntries(len(s.entries))
}

// NormalizeTicker trims, uppercases, and strips all internal whitespace.
func NormalizeTicker(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(raw)))
}

// Add creates an entry for (ticker, type). Adding an identifier that is
// already watched is a no-op that returns the existing entry untouched,
// including its note. The bool reports whether a new entry was created.
func (s *WatchlistStore) Add(ctx context.Context, ticker string, typ models.AssetType, note string) (models.WatchEntry, bool, error) {
	ticker = NormalizeTicker(ticker)
	if !tickerPattern.MatchString(ticker) {
		return models.WatchEntry{}, false, ErrInvalidTicker
	}
	if !typ.Valid() {
		return models.WatchEntry{}, false, ErrInvalidType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.SameIdentifier(ticker, typ) {
			return e, false, nil
		}
	}

	sig := signal.Derive(ticker, typ)
	s.metrics.RecordSignalDerived(string(typ))

	entry := models.WatchEntry{
		ID:         s.newID(),
		Ticker:     ticker,
		Type:       typ,
		Note:       note,
		AddedAt:    s.now().UnixMilli(),
		Zone:       sig.Zone,
		Confidence: sig.Confidence,
	}
	s.entries = append([]models.WatchEntry{entry}, s.entries...)

	s.persistLocked(ctx)
	s.publish(ctx, models.WatchEvent{
		Op:     models.EventAdded,
		ID:     entry.ID,
		Ticker: entry.Ticker,
		Type:   entry.Type,
		At:     entry.AddedAt,
	})
	return entry, true, nil
}

// Refresh recomputes zone and confidence for every entry. Identity,
// note and timestamp are preserved; nothing is added or removed.
func (s *WatchlistStore) Refresh(ctx context.Context) []models.WatchEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		sig := signal.Derive(e.Ticker, e.Type)
		s.entries[i].Zone = sig.Zone
		s.entries[i].Confidence = sig.Confidence
		s.metrics.RecordSignalDerived(string(e.Type))
	}

	s.persistLocked(ctx)
	s.publish(ctx, models.WatchEvent{Op: models.EventRefreshed, At: s.now().UnixMilli()})
	return s.sortedLocked()
}

// Remove deletes the entry with the given id. Unknown ids are a silent
// no-op; the persistence write still runs so the slot tracks state.
func (s *WatchlistStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed *models.WatchEntry
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID == id {
			ev := e
			removed = &ev
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept

	s.persistLocked(ctx)
	if removed != nil {
		s.publish(ctx, models.WatchEvent{
			Op:     models.EventRemoved,
			ID:     removed.ID,
			Ticker: removed.Ticker,
			Type:   removed.Type,
			At:     s.now().UnixMilli(),
		})
	}
}

// Clear empties the store.
func (s *WatchlistStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.persistLocked(ctx)
	s.publish(ctx, models.WatchEvent{Op: models.EventCleared, At: s.now().UnixMilli()})
}

// List returns entries newest-first plus the transient persistence
// status ("" when the last write succeeded). Order is recomputed per
// read, never stored.
func (s *WatchlistStore) List() ([]models.WatchEntry, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(), s.status
}

func (s *WatchlistStore) sortedLocked() []models.WatchEntry {
	out := make([]models.WatchEntry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedAt > out[j].AddedAt
	})
	return out
}

// persistLocked writes the full state. A failed write never propagates:
// in-memory state stays authoritative and the failure is surfaced as a
// status string until the next successful save.
func (s *WatchlistStore) persistLocked(ctx context.Context) {
	if s.state == stateUninitialized {
		s.status = ErrNotLoaded.Error()
		return
	}

	if err := s.snapshots.Save(ctx, s.entries); err != nil {
		s.status = fmt.Sprintf("changes not saved: %v", err)
		s.metrics.RecordSnapshotSave(false)
		s.logger.Warn("watchlist save failed", xlogger.Error(err))
	} else {
		s.status = ""
		s.metrics.RecordSnapshotSave(true)
	}
	s.metrics.RecordEntries(len(s.entries))
}

// publish is fire-and-forget: event stream failures are logged, never
// returned to the mutation that triggered them.
func (s *WatchlistStore) publish(ctx context.Context, ev models.WatchEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("watch event publish failed",
			xlogger.String("op", string(ev.Op)),
			xlogger.Error(err),
		)
	}
}

// seedEntries builds the default list shown when no snapshot exists.
// Signals are derived, not hard-coded, so seeds match what Refresh
// would produce.
func (s *WatchlistStore) seedEntries() []models.WatchEntry {
	if !s.seedDefaults {
		return nil
	}

	seeds := []struct {
		ticker string
		typ    models.AssetType
		note   string
	}{
		{"BTC", models.AssetCrypto, "long-term core position"},
		{"AAPL", models.AssetStock, "watch earnings"},
		{"VOO", models.AssetETF, ""},
	}

	now := s.now().UnixMilli()
	out := make([]models.WatchEntry, 0, len(seeds))
	for i, sd := range seeds {
		sig := signal.Derive(sd.ticker, sd.typ)
		out = append(out, models.WatchEntry{
			ID:         s.newID(),
			Ticker:     sd.ticker,
			Type:       sd.typ,
			Note:       sd.note,
			AddedAt:    now - int64(i), // keep seed order stable newest-first
			Zone:       sig.Zone,
			Confidence: sig.Confidence,
		})
	}
	return out
}
