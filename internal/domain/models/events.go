package models

// WatchEventOp enumerates watchlist mutations published downstream.
type WatchEventOp string

const (
	EventAdded     WatchEventOp = "added"
	EventRemoved   WatchEventOp = "removed"
	EventRefreshed WatchEventOp = "refreshed"
	EventCleared   WatchEventOp = "cleared"
)

// WatchEvent is one mutation record on the event stream. ID/Ticker/Type
// are empty for bulk operations (refreshed, cleared).
type WatchEvent struct {
	Op     WatchEventOp `json:"op"`
	ID     string       `json:"id,omitempty"`
	Ticker string       `json:"ticker,omitempty"`
	Type   AssetType    `json:"type,omitempty"`
	At     int64        `json:"at"` // unix milliseconds
}
