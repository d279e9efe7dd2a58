package schema

import "time"

// OwnershipRecord represents the ownership_records table - one row per purchased edition.
// Only UserID is ever mutated, when an orphaned record is reconciled to a profile.
type OwnershipRecord struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// UserID is nil until the record is linked to a profile
	UserID        *string   `gorm:"column:user_id;type:text;index" json:"user_id"`
	ItemID        int64     `gorm:"column:item_id;not null;uniqueIndex:idx_ownership_records_item_edition,priority:1" json:"item_id"`
	WalletAddress string    `gorm:"column:wallet_address;not null;type:text;index" json:"wallet_address"`
	EditionNumber int       `gorm:"column:edition_number;not null;uniqueIndex:idx_ownership_records_item_edition,priority:2" json:"edition_number"`
	TransactionID string    `gorm:"column:transaction_id;not null;type:text" json:"transaction_id"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for the OwnershipRecord model
func (OwnershipRecord) TableName() string {
	return "ownership_records"
}
