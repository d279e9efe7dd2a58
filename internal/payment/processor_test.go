package payment_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/mocks"
	"github.com/feral-file/ff-marketplace/internal/payment"
	"github.com/feral-file/ff-marketplace/internal/providers/crossmint"
	"github.com/feral-file/ff-marketplace/internal/store"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic("failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

func chargeInput() payment.ChargeInput {
	return payment.ChargeInput{
		ItemID:          7,
		BuyerWallet:     "buyer-wallet",
		SellerWallet:    "seller-wallet",
		PriceMinorUnits: 1999,
		Description:     "Purchase of Seven",
	}
}

func TestAmountFromMinorUnits(t *testing.T) {
	assert.Equal(t, "19.99", payment.AmountFromMinorUnits(1999).String())
	assert.Equal(t, "0.05", payment.AmountFromMinorUnits(5).String())
	assert.Equal(t, "10", payment.AmountFromMinorUnits(1000).String())
}

func TestCharge_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCrossmintClient(ctrl)
	st := mocks.NewMockStore(ctrl)

	client.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req crossmint.TransferRequest) (*crossmint.TransferResponse, error) {
			assert.True(t, decimal.RequireFromString("19.99").Equal(req.Amount))
			assert.Equal(t, "USDXM", req.Asset)
			assert.Equal(t, "buyer-wallet", req.From)
			assert.Equal(t, "seller-wallet", req.To)
			return &crossmint.TransferResponse{TransactionID: "pay_1"}, nil
		}).
		Times(1)
	st.EXPECT().
		CreatePaymentTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CreatePaymentTransactionInput) (*schema.PaymentTransaction, error) {
			assert.Equal(t, schema.PaymentStatusCompleted, input.Status)
			assert.Equal(t, "pay_1", *input.TransactionID)
			assert.Nil(t, input.ErrorMessage)
			return &schema.PaymentTransaction{}, nil
		}).
		Times(1)

	result, err := payment.NewProcessor(client, st, "").Charge(context.Background(), chargeInput())

	require.NoError(t, err)
	assert.Equal(t, "pay_1", result.TransactionID)
	assert.Equal(t, "USDXM", result.Asset)
}

func TestCharge_TransferRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCrossmintClient(ctrl)
	st := mocks.NewMockStore(ctrl)

	client.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewError(domain.ErrorKindUpstream, "crossmint.Transfer", "insufficient funds", nil)).
		Times(1)
	st.EXPECT().
		CreatePaymentTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CreatePaymentTransactionInput) (*schema.PaymentTransaction, error) {
			assert.Equal(t, schema.PaymentStatusFailed, input.Status)
			assert.Equal(t, "insufficient funds", *input.ErrorMessage)
			return nil, errors.New("insert failed")
		}).
		Times(1)

	_, err := payment.NewProcessor(client, st, "USDXM").Charge(context.Background(), chargeInput())

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindPaymentFailed, domain.KindOf(err))
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Equal(t, "insufficient funds", domain.MessageOf(err))
}

func TestCharge_NoSellerWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCrossmintClient(ctrl)
	st := mocks.NewMockStore(ctrl)
	client.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)

	input := chargeInput()
	input.SellerWallet = ""
	_, err := payment.NewProcessor(client, st, "USDXM").Charge(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindPaymentFailed, domain.KindOf(err))
}
