package purchase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/catalog"
	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/messaging"
	"github.com/feral-file/ff-marketplace/internal/mint"
	"github.com/feral-file/ff-marketplace/internal/ownership"
	"github.com/feral-file/ff-marketplace/internal/payment"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

// Request is a purchase of one edition of an item
type Request struct {
	Identifier  catalog.Identifier
	BuyerWallet string
	UserID      *string
}

// Result is a completed purchase
type Result struct {
	// TransactionID is nil when the mint returned no id
	TransactionID *string
	CrossmintData map[string]interface{}
	Item          *schema.Item
	EditionNumber *int
	Payment       *payment.ChargeResult
	Simulated     bool
}

// RecordError is returned when the mint succeeded but the ownership record could not be written
type RecordError struct {
	TransactionID        string
	// PaymentTransactionID is set when the buyer was charged
	PaymentTransactionID string
	Err                  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("mint %s succeeded but ownership was not recorded: %v", e.TransactionID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ChargedError is returned when the buyer was charged but the mint failed.
// The charge is not reversed automatically.
type ChargedError struct {
	PaymentTransactionID string
	Err                  error
}

func (e *ChargedError) Error() string {
	return fmt.Sprintf("payment %s completed but mint failed: %v", e.PaymentTransactionID, e.Err)
}

func (e *ChargedError) Unwrap() error {
	return e.Err
}

// Service runs the purchase saga
//
//go:generate mockgen -source=service.go -destination=../mocks/purchase_service.go -package=mocks -mock_names=Service=MockPurchaseService
type Service interface {
	// Purchase resolves the item, charges the buyer when payments are enabled, mints and records ownership
	Purchase(ctx context.Context, req Request) (*Result, error)
}

type service struct {
	resolver  catalog.Resolver
	payments  payment.Processor
	gateway   mint.Gateway
	ledger    ownership.Ledger
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewService creates a purchase service. A nil payments processor disables charging.
func NewService(
	resolver catalog.Resolver,
	payments payment.Processor,
	gateway mint.Gateway,
	ledger ownership.Ledger,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Service {
	return &service{
		resolver:  resolver,
		payments:  payments,
		gateway:   gateway,
		ledger:    ledger,
		publisher: publisher,
		clock:     clock,
	}
}

func (s *service) Purchase(ctx context.Context, req Request) (*Result, error) {
	resolution, err := s.resolver.Resolve(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}
	item := resolution.Item

	if err := catalog.CheckPurchasable(item); err != nil {
		return &Result{Item: item}, err
	}

	result := &Result{Item: item}

	if s.payments != nil {
		charge, err := s.payments.Charge(ctx, payment.ChargeInput{
			ItemID:          item.ID,
			BuyerWallet:     req.BuyerWallet,
			SellerWallet:    domain.StringOrEmpty(item.OwnerWalletAddress),
			PriceMinorUnits: *item.PriceMinorUnits,
			Description:     fmt.Sprintf("Purchase of %s", item.Title),
		})
		if err != nil {
			return nil, err
		}
		result.Payment = charge
	}

	minted, err := s.gateway.Mint(ctx, req.BuyerWallet, *item.MetadataURL)
	if err != nil {
		if result.Payment != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("message", "Buyer charged but mint failed, refund required"),
				zap.String("payment_transaction_id", result.Payment.TransactionID),
				zap.Int64("item_id", item.ID),
				logger.Wallet(req.BuyerWallet))
			return nil, &ChargedError{PaymentTransactionID: result.Payment.TransactionID, Err: err}
		}
		return nil, err
	}
	result.TransactionID = minted.TransactionID
	result.CrossmintData = minted.Raw
	result.Simulated = minted.Simulated

	recorded, err := s.ledger.Record(ctx, ownership.RecordInput{
		Item:          item,
		BuyerWallet:   req.BuyerWallet,
		UserID:        req.UserID,
		TransactionID: minted.TransactionID,
	})
	if err != nil {
		recordErr := &RecordError{
			TransactionID: domain.StringOrEmpty(minted.TransactionID),
			Err:           err,
		}
		if result.Payment != nil {
			recordErr.PaymentTransactionID = result.Payment.TransactionID
		}
		return nil, recordErr
	}
	result.EditionNumber = recorded.EditionNumber()

	if recorded.Record != nil {
		s.publish(ctx, &domain.MarketEvent{
			EventType:     domain.EventTypeOwnershipRecorded,
			ItemID:        item.ID,
			EditionNumber: result.EditionNumber,
			WalletAddress: req.BuyerWallet,
			UserID:        recorded.Record.UserID,
			TransactionID: minted.TransactionID,
			Simulated:     minted.Simulated,
			Timestamp:     s.clock.Now(),
		})
	}

	logger.InfoCtx(ctx, "Purchase completed",
		zap.Int64("item_id", item.ID),
		zap.String("strategy", string(resolution.Strategy)),
		logger.Wallet(req.BuyerWallet),
		zap.Bool("simulated", minted.Simulated))

	return result, nil
}

func (s *service) publish(ctx context.Context, event *domain.MarketEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event", zap.String("event_type", string(event.EventType)), zap.Error(err))
	}
}
