package domain

import "time"

// EventType identifies a marketplace event
type EventType string

const (
	EventTypeOwnershipRecorded EventType = "ownership.recorded"
	EventTypeItemMinted        EventType = "item.minted"
)

// MarketEvent is published after a purchase or an issuance completes
type MarketEvent struct {
	EventType     EventType `json:"event_type"`
	ItemID        int64     `json:"item_id"`
	EditionNumber *int      `json:"edition_number,omitempty"`
	WalletAddress string    `json:"wallet_address"`
	UserID        *string   `json:"user_id,omitempty"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	Simulated     bool      `json:"simulated"`
	Timestamp     time.Time `json:"timestamp"`
}
