package wallet_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/mocks"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
	"github.com/feral-file/ff-marketplace/internal/wallet"
)

const (
	userID   = "user-1234567890"
	walletA  = "0x1111111111111111111111111111111111111111"
	walletB  = "0x2222222222222222222222222222222222222222"
	providID = "cm-wallet-1"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic("failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

func strPtr(s string) *string {
	return &s
}

func TestBind_AlreadyBoundShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(&schema.UserProfile{
		ID:               userID,
		WalletAddress:    strPtr(walletA),
		WalletProviderID: strPtr(providID),
	}, nil).Times(1)

	result, err := wallet.NewBinder(st).Bind(context.Background(), userID, walletA, strPtr(providID))

	require.NoError(t, err)
	assert.False(t, result.Updated)
	assert.Empty(t, result.Method)
}

func TestBind_ProcedureTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(&schema.UserProfile{ID: userID, WalletAddress: strPtr(walletA)}, nil).Times(1)
	st.EXPECT().BindWalletViaProcedure(gomock.Any(), userID, walletB, nil).Return(nil).Times(1)

	result, err := wallet.NewBinder(st).Bind(context.Background(), userID, walletB, nil)

	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, wallet.MethodRPC, result.Method)
}

func TestBind_ProviderIDChangeIsNotShortCircuited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(&schema.UserProfile{ID: userID, WalletAddress: strPtr(walletA)}, nil).Times(1)
	st.EXPECT().BindWalletViaProcedure(gomock.Any(), userID, walletA, strPtr(providID)).Return(nil).Times(1)

	result, err := wallet.NewBinder(st).Bind(context.Background(), userID, walletA, strPtr(providID))

	require.NoError(t, err)
	assert.True(t, result.Updated)
}

func TestBind_FallsBackToDirectUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	gomock.InOrder(
		st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(nil, errors.New("read timeout")),
		st.EXPECT().BindWalletViaProcedure(gomock.Any(), userID, walletB, nil).Return(errors.New("function does not exist")),
		st.EXPECT().UpdateProfileWallet(gomock.Any(), userID, walletB, nil).Return(int64(1), nil),
	)

	result, err := wallet.NewBinder(st).Bind(context.Background(), userID, walletB, nil)

	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, wallet.MethodDirect, result.Method)
}

func TestBind_AllTiersFail(t *testing.T) {
	tests := []struct {
		name      string
		rows      int64
		updateErr error
	}{
		{name: "direct update error", rows: 0, updateErr: errors.New("permission denied")},
		{name: "no matching profile", rows: 0, updateErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := mocks.NewMockStore(ctrl)
			st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(nil, nil).Times(1)
			st.EXPECT().BindWalletViaProcedure(gomock.Any(), userID, walletB, nil).Return(errors.New("rpc failed")).Times(1)
			st.EXPECT().UpdateProfileWallet(gomock.Any(), userID, walletB, nil).Return(tt.rows, tt.updateErr).Times(1)

			result, err := wallet.NewBinder(st).Bind(context.Background(), userID, walletB, nil)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrWalletBindFailed)
			assert.Equal(t, domain.ErrorKindPersistence, domain.KindOf(err))
		})
	}
}
