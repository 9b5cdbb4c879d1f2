package model

import "time"

// Notification is produced by the alert engine and only ever mutated by
// marking it read. Retention is the caller's concern.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ItemID    string    `json:"item_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification types.
const (
	NotifProfitAlert    = "profit_alert"
	NotifMilestone      = "milestone"
	NotifRestock        = "restock"
	NotifListingRenewal = "listing_renewal"
	NotifMarketTrend    = "market_trend"
)
