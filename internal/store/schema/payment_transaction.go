package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the outcome of a payment transfer
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentTransaction represents the payment_transactions table - buyer to seller transfers
type PaymentTransaction struct {
	ID           uuid.UUID       `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	BuyerWallet  string          `gorm:"column:buyer_wallet;not null;type:text"`
	SellerWallet string          `gorm:"column:seller_wallet;not null;type:text"`
	Amount       decimal.Decimal `gorm:"column:amount;not null;type:numeric(20,6)"`
	Asset        string          `gorm:"column:asset;not null;type:text"`
	ItemID       int64           `gorm:"column:item_id;not null;index"`
	Status       PaymentStatus   `gorm:"column:status;not null;type:text"`
	// TransactionID is set on completed transfers, ErrorMessage on failed ones
	TransactionID *string   `gorm:"column:transaction_id;type:text"`
	ErrorMessage  *string   `gorm:"column:error_message;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the PaymentTransaction model
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
