package usecase

import (
	"errors"
	"testing"
	"time"
)

func fixedHistory() *HistoryUseCase {
	uc := NewHistoryUseCase(nopMetrics{})
	uc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestSeriesRequiresSymbol(t *testing.T) {
	uc := fixedHistory()
	for _, sym := range []string{"", "   "} {
		if _, err := uc.Series(sym, 100); !errors.Is(err, ErrSymbolRequired) {
			t.Fatalf("%q: want ErrSymbolRequired, got %v", sym, err)
		}
	}
}

func TestSeriesClampsDays(t *testing.T) {
	uc := fixedHistory()

	res, err := uc.Series("AAPL", 5)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if res.Days != MinHistoryDays || len(res.Candles) != MinHistoryDays {
		t.Fatalf("low days not clamped: %d/%d", res.Days, len(res.Candles))
	}

	res, err = uc.Series("AAPL", 99999)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if res.Days != MaxHistoryDays || len(res.Candles) != MaxHistoryDays {
		t.Fatalf("high days not clamped: %d/%d", res.Days, len(res.Candles))
	}
}

func TestSeriesUppercasesSeed(t *testing.T) {
	uc := fixedHistory()
	lower, _ := uc.Series("aapl", 60)
	upper, _ := uc.Series("AAPL", 60)
	if lower.Symbol != "AAPL" {
		t.Fatalf("symbol not uppercased: %q", lower.Symbol)
	}
	for i := range upper.Candles {
		if lower.Candles[i] != upper.Candles[i] {
			t.Fatalf("case must not change the series (candle %d)", i)
		}
	}
}

func TestSeriesEndsToday(t *testing.T) {
	uc := fixedHistory()
	res, err := uc.Series("BTC", 45)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	last := res.Candles[len(res.Candles)-1]
	if last.Date != "2026-08-30" {
		t.Fatalf("series must end on today's UTC day, got %s", last.Date)
	}
}
