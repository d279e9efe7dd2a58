package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// MaxIdleConns never exceeds MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// GetAuthIdentity retrieves an auth identity by id
func (s *pgStore) GetAuthIdentity(ctx context.Context, id string) (*schema.AuthIdentity, error) {
	var identity schema.AuthIdentity
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get auth identity: %w", err)
	}
	return &identity, nil
}

// CreateAuthIdentity inserts an auth identity
func (s *pgStore) CreateAuthIdentity(ctx context.Context, input CreateAuthIdentityInput) (*schema.AuthIdentity, error) {
	identity := schema.AuthIdentity{
		ID:            input.ID,
		Email:         input.Email,
		EmailVerified: input.EmailVerified,
		Metadata:      input.Metadata,
	}
	if err := s.db.WithContext(ctx).Create(&identity).Error; err != nil {
		return nil, fmt.Errorf("failed to create auth identity: %w", err)
	}
	return &identity, nil
}

// GetUserProfile retrieves a user profile by id
func (s *pgStore) GetUserProfile(ctx context.Context, id string) (*schema.UserProfile, error) {
	var profile schema.UserProfile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return &profile, nil
}

// CreateUserProfile inserts a user profile
func (s *pgStore) CreateUserProfile(ctx context.Context, input CreateUserProfileInput) (*schema.UserProfile, error) {
	profile := schema.UserProfile{
		ID:               input.ID,
		Email:            input.Email,
		WalletAddress:    input.WalletAddress,
		WalletProviderID: input.WalletProviderID,
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}
	return &profile, nil
}

// BindWalletViaProcedure calls update_user_wallet inside its own (sub)transaction
// so a failing call never poisons an enclosing transaction.
func (s *pgStore) BindWalletViaProcedure(ctx context.Context, userID string, walletAddress string, providerWalletID *string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec("SELECT update_user_wallet(?, ?, ?)", userID, walletAddress, providerWalletID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to call update_user_wallet: %w", err)
	}
	return nil
}

// UpdateProfileWallet updates the wallet of a profile directly
func (s *pgStore) UpdateProfileWallet(ctx context.Context, userID string, walletAddress string, providerWalletID *string) (int64, error) {
	updates := map[string]interface{}{
		"wallet_address": walletAddress,
		"updated_at":     gorm.Expr("now()"),
	}
	if providerWalletID != nil {
		updates["wallet_provider_id"] = *providerWalletID
	}

	result := s.db.WithContext(ctx).
		Model(&schema.UserProfile{}).
		Where("id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update profile wallet: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// EnsureWalletRecord inserts a wallet record unless one exists for the user and address
func (s *pgStore) EnsureWalletRecord(ctx context.Context, input EnsureWalletRecordInput) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.WalletRecord{}).
		Where("user_id = ? AND wallet_address = ?", input.UserID, input.WalletAddress).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check wallet record: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	userID := input.UserID
	record := schema.WalletRecord{
		UserID:        &userID,
		WalletAddress: input.WalletAddress,
		IsPrimary:     input.IsPrimary,
		WalletKind:    input.WalletKind,
	}

	// A concurrent insert for the same pair is not an error
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "wallet_address"}},
			DoNothing: true,
		}).
		Create(&record)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create wallet record: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetItemByID retrieves an item by primary key
func (s *pgStore) GetItemByID(ctx context.Context, id int64) (*schema.Item, error) {
	return s.firstItem(ctx, "id = ?", id)
}

// GetItemByTitle retrieves the first item whose title matches case-insensitively
func (s *pgStore) GetItemByTitle(ctx context.Context, title string) (*schema.Item, error) {
	return s.firstItem(ctx, "LOWER(title) = LOWER(?)", title)
}

// GetItemByParentID retrieves the first item whose parent is parentID
func (s *pgStore) GetItemByParentID(ctx context.Context, parentID int64) (*schema.Item, error) {
	return s.firstItem(ctx, "parent_item_id = ?", parentID)
}

func (s *pgStore) firstItem(ctx context.Context, query string, arg interface{}) (*schema.Item, error) {
	var item schema.Item
	err := s.db.WithContext(ctx).Where(query, arg).Order("id ASC").First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// CreateItem inserts an item
func (s *pgStore) CreateItem(ctx context.Context, input CreateItemInput) (*schema.Item, error) {
	status := input.Status
	if status == "" {
		status = schema.ItemStatusListed
	}

	item := schema.Item{
		Title:              input.Title,
		Artist:             input.Artist,
		Album:              input.Album,
		CoverArtURL:        input.CoverArtURL,
		MediaURL:           input.MediaURL,
		ReleaseDate:        input.ReleaseDate,
		PriceMinorUnits:    input.PriceMinorUnits,
		Status:             status,
		MetadataURL:        input.MetadataURL,
		OwnerWalletAddress: input.OwnerWalletAddress,
		TransactionID:      input.TransactionID,
		ParentItemID:       input.ParentItemID,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// SetItemMetadata stores the metadata document and its URL on an item
func (s *pgStore) SetItemMetadata(ctx context.Context, itemID int64, metadataURL string, metadata datatypes.JSON) error {
	return s.updateItem(ctx, itemID, map[string]interface{}{
		"metadata_url": metadataURL,
		"metadata":     metadata,
	})
}

// UpdateItemMintResult records the mint outcome on an item
func (s *pgStore) UpdateItemMintResult(ctx context.Context, itemID int64, input UpdateItemMintResultInput) error {
	return s.updateItem(ctx, itemID, map[string]interface{}{
		"status":               input.Status,
		"owner_wallet_address": input.OwnerWalletAddress,
		"transaction_id":       input.TransactionID,
	})
}

func (s *pgStore) updateItem(ctx context.Context, itemID int64, updates map[string]interface{}) error {
	updates["updated_at"] = gorm.Expr("now()")
	result := s.db.WithContext(ctx).
		Model(&schema.Item{}).
		Where("id = ?", itemID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update item: item %d not found", itemID)
	}
	return nil
}

// IncrementMintedCount atomically increments the minted counter of an item
func (s *pgStore) IncrementMintedCount(ctx context.Context, itemID int64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Item{}).
		Where("id = ?", itemID).
		UpdateColumn("minted_count", gorm.Expr("minted_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment minted count: %w", err)
	}
	return nil
}

// RecordOwnership assigns the next edition number and appends an ownership record.
// The item row is locked for the duration of the transaction so concurrent
// purchases of the same item are serialized and receive distinct editions.
func (s *pgStore) RecordOwnership(ctx context.Context, input RecordOwnershipInput) (*RecordOwnershipResult, error) {
	var result RecordOwnershipResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the item row
		var item schema.Item
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", input.ItemID).
			First(&item).Error
		if err != nil {
			return fmt.Errorf("failed to lock item %d: %w", input.ItemID, err)
		}

		// 2. Next edition is the number of existing records plus one
		var count int64
		if err := tx.Model(&schema.OwnershipRecord{}).
			Where("item_id = ?", input.ItemID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count ownership records: %w", err)
		}

		// 3. Only link the record to a profile that exists
		var userID *string
		if input.UserID != nil && *input.UserID != "" {
			var profiles int64
			if err := tx.Model(&schema.UserProfile{}).
				Where("id = ?", *input.UserID).
				Count(&profiles).Error; err != nil {
				return fmt.Errorf("failed to verify profile: %w", err)
			}
			if profiles > 0 {
				userID = input.UserID
				result.ProfileLinked = true
			}
		}

		// 4. Append the record
		record := schema.OwnershipRecord{
			UserID:        userID,
			ItemID:        input.ItemID,
			WalletAddress: input.WalletAddress,
			EditionNumber: int(count) + 1,
			TransactionID: input.TransactionID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create ownership record: %w", err)
		}

		result.Record = &record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CountOwnershipRecords counts the ownership records of an item
func (s *pgStore) CountOwnershipRecords(ctx context.Context, itemID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.OwnershipRecord{}).
		Where("item_id = ?", itemID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count ownership records: %w", err)
	}
	return count, nil
}

// ReassociateOrphans links every orphaned record of a wallet to a user
func (s *pgStore) ReassociateOrphans(ctx context.Context, userID string, walletAddress string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.OwnershipRecord{}).
		Where("wallet_address = ? AND user_id IS NULL", walletAddress).
		Update("user_id", userID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reassociate orphaned records: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ListOrphanBindings lists profiles whose bound wallet owns orphaned records
func (s *pgStore) ListOrphanBindings(ctx context.Context, limit int) ([]OrphanBinding, error) {
	var bindings []OrphanBinding
	err := s.db.WithContext(ctx).
		Table("user_profiles AS p").
		Select("DISTINCT p.id AS user_id, p.wallet_address AS wallet_address").
		Joins("JOIN ownership_records o ON o.wallet_address = p.wallet_address").
		Where("o.user_id IS NULL AND p.wallet_address IS NOT NULL").
		Order("p.id").
		Limit(limit).
		Scan(&bindings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orphan bindings: %w", err)
	}
	return bindings, nil
}

// CreatePaymentTransaction records a payment attempt
func (s *pgStore) CreatePaymentTransaction(ctx context.Context, input CreatePaymentTransactionInput) (*schema.PaymentTransaction, error) {
	payment := schema.PaymentTransaction{
		BuyerWallet:   input.BuyerWallet,
		SellerWallet:  input.SellerWallet,
		Amount:        input.Amount,
		Asset:         input.Asset,
		ItemID:        input.ItemID,
		Status:        input.Status,
		TransactionID: input.TransactionID,
		ErrorMessage:  input.ErrorMessage,
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment transaction: %w", err)
	}
	return &payment, nil
}
