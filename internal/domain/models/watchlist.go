package models

// AssetType classifies the instrument behind a watch entry. The same
// ticker under two different types is two distinct identifiers.
type AssetType string

const (
	AssetCrypto AssetType = "CRYPTO"
	AssetStock  AssetType = "STOCK"
	AssetETF    AssetType = "ETF"
)

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetCrypto, AssetStock, AssetETF:
		return true
	}
	return false
}

// Zone buckets how attractive current price levels look for an asset.
type Zone string

const (
	ZoneInBuy         Zone = "IN_BUY_ZONE"
	ZoneApproaching   Zone = "APPROACHING"
	ZoneNotAttractive Zone = "NOT_ATTRACTIVE"
)

// Signal is the derived classification for one identifier.
// Confidence is an integer percentage in [35, 100].
type Signal struct {
	Zone       Zone `json:"zone"`
	Confidence int  `json:"confidence"`
}

// WatchEntry is one watched asset. The JSON shape doubles as the
// persisted snapshot schema and must stay backward-readable.
type WatchEntry struct {
	ID         string    `json:"id"`
	Ticker     string    `json:"ticker"`
	Type       AssetType `json:"type"`
	Note       string    `json:"note,omitempty"`
	AddedAt    int64     `json:"addedAt"` // unix milliseconds
	Zone       Zone      `json:"zone"`
	Confidence int       `json:"confidence,omitempty"`
}

// SameIdentifier reports whether two entries track the same asset.
func (e WatchEntry) SameIdentifier(ticker string, typ AssetType) bool {
	return e.Ticker == ticker && e.Type == typ
}
