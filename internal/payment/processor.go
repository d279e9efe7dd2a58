package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/providers/crossmint"
	"github.com/feral-file/ff-marketplace/internal/store"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

// ChargeInput describes a buyer payment for an item
type ChargeInput struct {
	ItemID          int64
	BuyerWallet     string
	SellerWallet    string
	PriceMinorUnits int64
	Description     string
}

// ChargeResult is a completed payment
type ChargeResult struct {
	TransactionID string
	Amount        decimal.Decimal
	Asset         string
}

// Processor charges buyers before an item is minted to them
//
//go:generate mockgen -source=processor.go -destination=../mocks/payment_processor.go -package=mocks -mock_names=Processor=MockPaymentProcessor
type Processor interface {
	// Charge transfers the item price from buyer to seller and records the attempt
	Charge(ctx context.Context, input ChargeInput) (*ChargeResult, error)
}

type processor struct {
	client crossmint.Client
	store  store.Store
	asset  string
}

// NewProcessor creates a payment processor that settles in asset through Crossmint
func NewProcessor(client crossmint.Client, store store.Store, asset string) Processor {
	if asset == "" {
		asset = domain.DEFAULT_PAYMENT_ASSET
	}
	return &processor{
		client: client,
		store:  store,
		asset:  asset,
	}
}

// AmountFromMinorUnits converts cents into the settlement amount
func AmountFromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

func (p *processor) Charge(ctx context.Context, input ChargeInput) (*ChargeResult, error) {
	amount := AmountFromMinorUnits(input.PriceMinorUnits)

	if input.SellerWallet == "" {
		return nil, domain.NewError(domain.ErrorKindPaymentFailed, "payment.Charge", "Item has no seller wallet", domain.ErrPaymentFailed)
	}

	resp, err := p.client.Transfer(ctx, crossmint.TransferRequest{
		From:        input.BuyerWallet,
		To:          input.SellerWallet,
		Amount:      amount,
		Asset:       p.asset,
		Description: input.Description,
	})
	if err != nil {
		message := domain.MessageOf(err)
		p.record(ctx, input, amount, schema.PaymentStatusFailed, nil, &message)
		return nil, domain.NewError(domain.ErrorKindPaymentFailed, "payment.Charge", message,
			fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err))
	}

	var txID *string
	if resp.TransactionID != "" {
		id := resp.TransactionID
		txID = &id
	}
	p.record(ctx, input, amount, schema.PaymentStatusCompleted, txID, nil)

	logger.InfoCtx(ctx, "Payment completed",
		zap.Int64("item_id", input.ItemID),
		zap.String("amount", amount.String()),
		zap.String("asset", p.asset),
		logger.TxID(resp.TransactionID))

	return &ChargeResult{
		TransactionID: resp.TransactionID,
		Amount:        amount,
		Asset:         p.asset,
	}, nil
}

func (p *processor) record(ctx context.Context, input ChargeInput, amount decimal.Decimal, status schema.PaymentStatus, txID *string, errorMessage *string) {
	_, err := p.store.CreatePaymentTransaction(ctx, store.CreatePaymentTransactionInput{
		BuyerWallet:   input.BuyerWallet,
		SellerWallet:  input.SellerWallet,
		Amount:        amount,
		Asset:         p.asset,
		ItemID:        input.ItemID,
		Status:        status,
		TransactionID: txID,
		ErrorMessage:  errorMessage,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to record payment transaction", zap.Int64("item_id", input.ItemID), zap.Error(err))
	}
}
