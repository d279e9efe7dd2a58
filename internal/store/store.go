package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

// CreateAuthIdentityInput represents the input for creating an auth identity
type CreateAuthIdentityInput struct {
	ID            string
	Email         string
	EmailVerified bool
	Metadata      datatypes.JSON
}

// CreateUserProfileInput represents the input for creating a user profile
type CreateUserProfileInput struct {
	ID               string
	Email            string
	WalletAddress    *string
	WalletProviderID *string
}

// EnsureWalletRecordInput represents the input for registering a wallet for a user
type EnsureWalletRecordInput struct {
	UserID        string
	WalletAddress string
	IsPrimary     bool
	WalletKind    string
}

// CreateItemInput represents the input for creating an item row.
// Clones created by the ownership ledger set ParentItemID and leave the price empty.
type CreateItemInput struct {
	Title              string
	Artist             string
	Album              *string
	CoverArtURL        *string
	MediaURL           *string
	ReleaseDate        *time.Time
	PriceMinorUnits    *int64
	Status             schema.ItemStatus
	MetadataURL        *string
	OwnerWalletAddress *string
	TransactionID      *string
	ParentItemID       *int64
}

// UpdateItemMintResultInput represents the outcome of a mint for an issued item
type UpdateItemMintResultInput struct {
	Status             schema.ItemStatus
	OwnerWalletAddress *string
	TransactionID      *string
}

// RecordOwnershipInput represents the input for appending an ownership record
type RecordOwnershipInput struct {
	ItemID        int64
	WalletAddress string
	// UserID links the record to a profile; the record is stored orphaned when the profile does not exist
	UserID        *string
	TransactionID string
}

// RecordOwnershipResult represents a written ownership record
type RecordOwnershipResult struct {
	Record *schema.OwnershipRecord
	// ProfileLinked is true when UserID referred to an existing profile
	ProfileLinked bool
}

// OrphanBinding is a profile whose bound wallet owns records without a user id
type OrphanBinding struct {
	UserID        string
	WalletAddress string
}

// CreatePaymentTransactionInput represents the input for recording a payment attempt
type CreatePaymentTransactionInput struct {
	BuyerWallet   string
	SellerWallet  string
	Amount        decimal.Decimal
	Asset         string
	ItemID        int64
	Status        schema.PaymentStatus
	TransactionID *string
	ErrorMessage  *string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// GetAuthIdentity retrieves an auth identity by id, nil when absent
	GetAuthIdentity(ctx context.Context, id string) (*schema.AuthIdentity, error)
	// CreateAuthIdentity inserts an auth identity
	CreateAuthIdentity(ctx context.Context, input CreateAuthIdentityInput) (*schema.AuthIdentity, error)

	// GetUserProfile retrieves a user profile by id, nil when absent
	GetUserProfile(ctx context.Context, id string) (*schema.UserProfile, error)
	// CreateUserProfile inserts a user profile
	CreateUserProfile(ctx context.Context, input CreateUserProfileInput) (*schema.UserProfile, error)
	// BindWalletViaProcedure binds a wallet through the privileged update_user_wallet procedure
	BindWalletViaProcedure(ctx context.Context, userID string, walletAddress string, providerWalletID *string) error
	// UpdateProfileWallet updates the wallet of a profile directly and returns the number of matched rows.
	// A nil providerWalletID leaves the stored provider id unchanged.
	UpdateProfileWallet(ctx context.Context, userID string, walletAddress string, providerWalletID *string) (int64, error)

	// EnsureWalletRecord inserts a wallet record unless one exists for the user and address
	EnsureWalletRecord(ctx context.Context, input EnsureWalletRecordInput) (bool, error)

	// GetItemByID retrieves an item by primary key, nil when absent
	GetItemByID(ctx context.Context, id int64) (*schema.Item, error)
	// GetItemByTitle retrieves the first item whose title matches case-insensitively, nil when absent
	GetItemByTitle(ctx context.Context, title string) (*schema.Item, error)
	// GetItemByParentID retrieves the first item whose parent is parentID, nil when absent
	GetItemByParentID(ctx context.Context, parentID int64) (*schema.Item, error)
	// CreateItem inserts an item
	CreateItem(ctx context.Context, input CreateItemInput) (*schema.Item, error)
	// SetItemMetadata stores the metadata document and its URL on an item
	SetItemMetadata(ctx context.Context, itemID int64, metadataURL string, metadata datatypes.JSON) error
	// UpdateItemMintResult records the mint outcome on an item
	UpdateItemMintResult(ctx context.Context, itemID int64, input UpdateItemMintResultInput) error
	// IncrementMintedCount atomically increments the minted counter of an item
	IncrementMintedCount(ctx context.Context, itemID int64) error

	// RecordOwnership assigns the next edition number for an item and appends an ownership record atomically
	RecordOwnership(ctx context.Context, input RecordOwnershipInput) (*RecordOwnershipResult, error)
	// CountOwnershipRecords counts the ownership records of an item
	CountOwnershipRecords(ctx context.Context, itemID int64) (int64, error)
	// ReassociateOrphans links every orphaned record of a wallet to a user and returns the affected count
	ReassociateOrphans(ctx context.Context, userID string, walletAddress string) (int64, error)
	// ListOrphanBindings lists profiles whose bound wallet owns orphaned records
	ListOrphanBindings(ctx context.Context, limit int) ([]OrphanBinding, error)

	// CreatePaymentTransaction records a payment attempt
	CreatePaymentTransaction(ctx context.Context, input CreatePaymentTransactionInput) (*schema.PaymentTransaction, error)
}
