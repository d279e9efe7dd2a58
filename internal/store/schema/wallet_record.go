package schema

import (
	"time"

	"github.com/google/uuid"
)

// WalletRecord represents the wallet_records table - wallets known for a user
type WalletRecord struct {
	ID            uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        *string   `gorm:"column:user_id;type:text;uniqueIndex:idx_wallet_records_user_wallet,priority:1"`
	WalletAddress string    `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_wallet_records_user_wallet,priority:2"`
	IsPrimary     bool      `gorm:"column:is_primary;not null;default:false"`
	// WalletKind is the address family (evm, solana, unknown)
	WalletKind string    `gorm:"column:wallet_kind;not null;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the WalletRecord model
func (WalletRecord) TableName() string {
	return "wallet_records"
}
