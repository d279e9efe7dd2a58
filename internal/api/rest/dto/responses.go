package dto

import (
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

// AuthSyncResponse is returned when an identity sync ran
type AuthSyncResponse struct {
	Success    bool   `json:"success"`
	AuthUser   bool   `json:"authUser"`
	PublicUser bool   `json:"publicUser"`
	Message    string `json:"message"`
}

// DuplicateSyncResponse is returned when an identity sync was suppressed
type DuplicateSyncResponse struct {
	Success          bool   `json:"success"`
	DuplicateRequest bool   `json:"duplicateRequest"`
	Message          string `json:"message"`
}

// UpdateUserWalletResponse is returned by the wallet binding update
type UpdateUserWalletResponse struct {
	Success   bool   `json:"success"`
	Updated   bool   `json:"updated"`
	Method    string `json:"method,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Message   string `json:"message"`
}

// PaymentSummary describes the buyer payment of a purchase
type PaymentSummary struct {
	TransactionID string `json:"transactionId"`
	Amount        string `json:"amount"`
	Asset         string `json:"asset"`
}

// PurchaseResponse is returned by a completed purchase
type PurchaseResponse struct {
	OK            bool                   `json:"ok"`
	TransactionID *string                `json:"transactionId"`
	CrossmintData map[string]interface{} `json:"crossmintData"`
	Track         *schema.Item           `json:"track"`
	EditionNumber *int                   `json:"editionNumber"`
	Simulated     bool                   `json:"simulated,omitempty"`
	Payment       *PaymentSummary        `json:"payment,omitempty"`
}

// TrackSummary is the item excerpt attached to unpurchasable-item errors
type TrackSummary struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	PriceCents *int64            `json:"price_cents"`
	Status     schema.ItemStatus `json:"status"`
}

// NewTrackSummary summarizes an item
func NewTrackSummary(item *schema.Item) *TrackSummary {
	if item == nil {
		return nil
	}
	return &TrackSummary{
		ID:         item.ID,
		Title:      item.Title,
		PriceCents: item.PriceMinorUnits,
		Status:     item.Status,
	}
}

// RefreshUserDataResponse is returned by the orphan reconciliation
type RefreshUserDataResponse struct {
	Success           bool   `json:"success"`
	UpdatedWallet     bool   `json:"updatedWallet"`
	OrphanedNftsCount int64  `json:"orphanedNftsCount"`
	Message           string `json:"message"`
}

// MintItemResponse is returned by item issuance
type MintItemResponse struct {
	OK            bool                   `json:"ok"`
	TrackID       int64                  `json:"trackId"`
	MetadataURL   string                 `json:"metadataUrl"`
	TransactionID *string                `json:"transactionId"`
	CrossmintData map[string]interface{} `json:"crossmintData"`
}

// HealthCheckResult is the outcome of one dependency check
type HealthCheckResult struct {
	OK        bool   `json:"ok"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	OK     bool                         `json:"ok"`
	Checks map[string]HealthCheckResult `json:"checks"`
}
