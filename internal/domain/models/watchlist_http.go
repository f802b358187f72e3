package models

// Requests for watchlist HTTP endpoints. Defined in domain for consistency and reuse.

type AddWatchRequest struct {
	Ticker string `json:"ticker" validate:"required,max=40"`
	Type   string `json:"type" default:"STOCK" validate:"oneof=CRYPTO STOCK ETF"`
	Note   string `json:"note" validate:"max=200"`
}

// WatchlistResponse is the read model for the list endpoints. Status
// carries the transient persistence warning, empty when the last save
// succeeded.
type WatchlistResponse struct {
	Entries []WatchEntry `json:"entries"`
	Status  string       `json:"status,omitempty"`
}

// HistoryResponse is the exact wire contract of /api/history.
type HistoryResponse struct {
	OK      bool     `json:"ok"`
	Symbol  string   `json:"symbol"`
	Days    int      `json:"days"`
	Candles []Candle `json:"candles"`
}

// HistoryError is the error payload of /api/history.
type HistoryError struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
