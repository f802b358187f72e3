package models

// Candle is one synthetic daily OHLCV record. Date is the UTC calendar
// day in ISO form (YYYY-MM-DD). All prices are rounded to 4 decimals
// before leaving the generator so serialized output is stable.
type Candle struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
