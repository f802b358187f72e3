package signal

import (
	"math"
	"strconv"
	"time"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
)

// The whole product is seeded by this one hash: every zone, confidence
// and candle derives from it, so the constants are frozen. Changing
// them reshuffles every signal users have already seen.
const (
	hashOffset uint32 = 2166136261
	hashPrime  uint32 = 16777619
)

// Hash mixes s into a 32-bit unsigned value by xor-then-multiply
// accumulation over each byte.
func Hash(s string) uint32 {
	h := hashOffset
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= hashPrime
	}
	return h
}

// frac maps a key to a fraction in [0, 1).
func frac(key string) float64 {
	return float64(Hash(key)) / 4294967296.0
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

// Derive maps an asset identifier to its zone and confidence score.
// Pure and stateless: the result depends only on the type|ticker key,
// never on the clock or process state.
func Derive(ticker string, typ models.AssetType) models.Signal {
	h := Hash(string(typ) + "|" + ticker)

	zone := models.ZoneInBuy
	switch h % 3 {
	case 1:
		zone = models.ZoneApproaching
	case 2:
		zone = models.ZoneNotAttractive
	}

	return models.Signal{
		Zone:       zone,
		Confidence: int(35 + h%66), // [35, 100]
	}
}

// Candles synthesizes a daily OHLCV series: exactly days candles,
// consecutive UTC calendar days ending on end's day, oldest first.
// The walk is seeded entirely by the symbol, so repeated calls return
// identical series. Callers validate symbol and clamp days beforehand.
func Candles(symbol string, days int, end time.Time) []models.Candle {
	h := Hash(symbol)
	vol := 0.008 + float64(h%100)/100*0.01      // daily volatility, 0.8%..1.8%
	drift := (float64((h>>8)%21) - 10) / 10000  // signed, -0.001..0.001
	start := round4(20 + float64(h%8000)/100)   // 20..99.99

	day := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(days - 1))

	out := make([]models.Candle, 0, days)
	open := start
	for i := 0; i < days; i++ {
		n := strconv.Itoa(i)
		r1 := frac(symbol + "|a" + n)
		r2 := frac(symbol + "|b" + n)
		r3 := frac(symbol + "|c" + n)
		r4 := frac(symbol + "|v" + n)

		move := (r1-0.5)*2*vol + drift
		cls := open * (1 + move)
		// a single day never moves more than 15% off its open
		if cls > open*1.15 {
			cls = open * 1.15
		}
		if cls < open*0.85 {
			cls = open * 0.85
		}
		cls = round4(cls)

		hi := round4(math.Max(open, cls) * (1 + r2*vol))
		lo := round4(math.Min(open, cls) * (1 - r3*vol))
		// rounding must not break the OHLC envelope
		if m := math.Max(open, cls); hi < m {
			hi = m
		}
		if m := math.Min(open, cls); lo > m {
			lo = m
		}

		out = append(out, models.Candle{
			Date:   day.Format("2006-01-02"),
			Open:   open,
			High:   hi,
			Low:    lo,
			Close:  cls,
			Volume: 1000 + int64(r4*50000), // [1000, 51000)
		})

		// rounded close carries forward so the chain is exact on the wire
		open = cls
		day = day.AddDate(0, 0, 1)
	}
	return out
}
