package ownership

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/store"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

// RecordInput describes a completed mint to record
type RecordInput struct {
	Item        *schema.Item
	BuyerWallet string
	// UserID is optional; records are stored orphaned when it does not name a profile
	UserID *string
	// TransactionID is nil when the mint returned no id; only the clone row is written then
	TransactionID *string
}

// RecordResult is what the ledger wrote
type RecordResult struct {
	// Clone is nil when the clone insert failed
	Clone         *schema.Item
	Record        *schema.OwnershipRecord
	ProfileLinked bool
}

// EditionNumber returns the edition of the written record, or nil
func (r *RecordResult) EditionNumber() *int {
	if r == nil || r.Record == nil {
		return nil
	}
	edition := r.Record.EditionNumber
	return &edition
}

// Ledger writes purchase clones and ownership records
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ownership_ledger.go -package=mocks -mock_names=Ledger=MockOwnershipLedger
type Ledger interface {
	Record(ctx context.Context, input RecordInput) (*RecordResult, error)
}

type ledger struct {
	store store.Store
}

// NewLedger creates a new ownership ledger
func NewLedger(store store.Store) Ledger {
	return &ledger{store: store}
}

func (l *ledger) Record(ctx context.Context, input RecordInput) (*RecordResult, error) {
	result := &RecordResult{}
	item := input.Item

	status := schema.ItemStatusError
	if input.TransactionID != nil {
		status = schema.ItemStatusMinted
	}

	buyer := input.BuyerWallet
	parentID := item.ID
	clone, err := l.store.CreateItem(ctx, store.CreateItemInput{
		Title:              item.Title,
		Artist:             item.Artist,
		Album:              item.Album,
		CoverArtURL:        item.CoverArtURL,
		MediaURL:           item.MediaURL,
		ReleaseDate:        item.ReleaseDate,
		Status:             status,
		MetadataURL:        item.MetadataURL,
		OwnerWalletAddress: &buyer,
		TransactionID:      input.TransactionID,
		ParentItemID:       &parentID,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to create purchase clone", zap.Int64("item_id", item.ID), zap.Error(err))
	} else {
		result.Clone = clone
	}

	if input.TransactionID == nil {
		logger.WarnCtx(ctx, "Mint returned no transaction id, skipping ownership record", zap.Int64("item_id", item.ID))
		return result, nil
	}

	written, err := l.store.RecordOwnership(ctx, store.RecordOwnershipInput{
		ItemID:        item.ID,
		WalletAddress: buyer,
		UserID:        input.UserID,
		TransactionID: *input.TransactionID,
	})
	if err != nil {
		return nil, domain.NewError(domain.ErrorKindPersistence, "ownership.Record",
			"Failed to record ownership",
			fmt.Errorf("%w: %w", domain.ErrOwnershipRecordFailed, err))
	}
	result.Record = written.Record
	result.ProfileLinked = written.ProfileLinked

	logger.InfoCtx(ctx, "Recorded ownership",
		zap.Int64("item_id", item.ID),
		zap.Int("edition_number", written.Record.EditionNumber),
		logger.Wallet(buyer),
		logger.TxID(*input.TransactionID))

	if written.ProfileLinked && input.UserID != nil {
		if _, err := l.store.UpdateProfileWallet(ctx, *input.UserID, buyer, nil); err != nil {
			logger.WarnCtx(ctx, "Failed to refresh profile wallet", logger.UserID(*input.UserID), zap.Error(err))
		}
	}

	if err := l.store.IncrementMintedCount(ctx, item.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to increment minted count", zap.Int64("item_id", item.ID), zap.Error(err))
	}

	return result, nil
}
