package dto

import "encoding/json"

// AuthSyncRequest is the body of POST /api/auth-sync
type AuthSyncRequest struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	WalletAddress     *string `json:"walletAddress"`
	CrossmintWalletID *string `json:"crossmintWalletId"`
}

// UpdateUserWalletRequest is the body of POST /api/update-user-wallet
type UpdateUserWalletRequest struct {
	UserID            string  `json:"userId"`
	WalletAddress     string  `json:"walletAddress"`
	CrossmintWalletID *string `json:"crossmintWalletId"`
	// Email makes sure the identity and profile exist before binding
	Email *string `json:"email"`
}

// PurchaseRequest is the body of POST /api/purchase-track.
// TrackID may be a number or a string.
type PurchaseRequest struct {
	TrackID     json.RawMessage `json:"trackId"`
	BuyerWallet string          `json:"buyerWallet"`
	UserID      *string         `json:"userId"`
}

// RefreshUserDataRequest is the body of POST /api/refresh-user-data
type RefreshUserDataRequest struct {
	UserID        string `json:"userId"`
	WalletAddress string `json:"walletAddress"`
}

// MintItemRequest is the body of POST /api/v1/items/mint
type MintItemRequest struct {
	Title         string  `json:"title"`
	Artist        string  `json:"artist"`
	Album         *string `json:"album"`
	CoverArtURL   string  `json:"coverArtUrl"`
	AudioFileURL  string  `json:"audioFileUrl"`
	ReleaseDate   *string `json:"releaseDate"`
	WalletAddress string  `json:"walletAddress"`
	PriceCents    *int64  `json:"priceCents"`
}
