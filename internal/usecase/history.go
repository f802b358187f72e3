package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
	domrepo "github.com/puglisirhys-create/buyzone/internal/domain/repository"
	"github.com/puglisirhys-create/buyzone/internal/signal"
	"github.com/puglisirhys-create/buyzone/pkg/util"
)

// Bounds for the synthetic history endpoint. The clamp keeps worst-case
// generation latency bounded; there is no cancellation path below it.
const (
	DefaultHistoryDays = 365
	MinHistoryDays     = 30
	MaxHistoryDays     = 2000
)

var ErrSymbolRequired = errors.New("history: symbol is required")

// HistoryUseCase validates inputs and runs the candle generator.
type HistoryUseCase struct {
	metrics domrepo.Metrics
	now     func() time.Time
}

func NewHistoryUseCase(metrics domrepo.Metrics) *HistoryUseCase {
	return &HistoryUseCase{metrics: metrics, now: time.Now}
}

type GetHistoryResult struct {
	Symbol  string
	Days    int
	Candles []models.Candle
}

// Series returns the deterministic daily series for symbol. days is
// clamped to [MinHistoryDays, MaxHistoryDays]; the symbol is uppercased
// before seeding so "aapl" and "AAPL" are the same series.
func (uc *HistoryUseCase) Series(symbol string, days int) (*GetHistoryResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	days = util.ClampInt(days, MinHistoryDays, MaxHistoryDays)

	start := time.Now()
	candles := signal.Candles(symbol, days, uc.now().UTC())
	uc.metrics.RecordCandlesGenerated(symbol, len(candles))
	uc.metrics.RecordLatency("history_series", time.Since(start).Seconds())

	return &GetHistoryResult{
		Symbol:  symbol,
		Days:    days,
		Candles: candles,
	}, nil
}
