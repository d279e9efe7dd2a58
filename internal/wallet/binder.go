package wallet

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/store"
)

// Method is the tier that performed a wallet binding
type Method string

const (
	MethodRPC    Method = "rpc"
	MethodDirect Method = "direct"
)

// BindResult is the outcome of a wallet binding
type BindResult struct {
	Updated bool
	// Method is empty when nothing was written
	Method Method
}

// Binder binds a wallet to a user profile
//
//go:generate mockgen -source=binder.go -destination=../mocks/wallet_binder.go -package=mocks -mock_names=Binder=MockWalletBinder
type Binder interface {
	// Bind writes walletAddress and providerWalletID to the profile of userID.
	// Returns Updated=false without writing when the profile already holds both values.
	Bind(ctx context.Context, userID string, walletAddress string, providerWalletID *string) (*BindResult, error)
}

type binder struct {
	store store.Store
}

// NewBinder creates a new wallet binder
func NewBinder(store store.Store) Binder {
	return &binder{store: store}
}

func (b *binder) Bind(ctx context.Context, userID string, walletAddress string, providerWalletID *string) (*BindResult, error) {
	profile, err := b.store.GetUserProfile(ctx, userID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load profile before wallet binding", logger.UserID(userID), zap.Error(err))
	}

	if profile != nil &&
		domain.StringOrEmpty(profile.WalletAddress) == walletAddress &&
		domain.EqualOptional(profile.WalletProviderID, providerWalletID) {
		logger.DebugCtx(ctx, "Wallet already bound", logger.UserID(userID))
		return &BindResult{Updated: false}, nil
	}

	err = b.store.BindWalletViaProcedure(ctx, userID, walletAddress, providerWalletID)
	if err == nil {
		logger.InfoCtx(ctx, "Bound wallet", logger.UserID(userID), logger.Wallet(walletAddress), zap.String("method", string(MethodRPC)))
		return &BindResult{Updated: true, Method: MethodRPC}, nil
	}

	logger.WarnCtx(ctx, "Wallet procedure failed, falling back to direct update", logger.UserID(userID), zap.Error(err))

	rows, err := b.store.UpdateProfileWallet(ctx, userID, walletAddress, providerWalletID)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKindPersistence, "wallet.Bind", "failed to update wallet",
			fmt.Errorf("%w: %w", domain.ErrWalletBindFailed, err))
	}
	if rows == 0 {
		return nil, domain.NewError(domain.ErrorKindPersistence, "wallet.Bind", "failed to update wallet",
			fmt.Errorf("%w: no profile for user", domain.ErrWalletBindFailed))
	}

	logger.InfoCtx(ctx, "Bound wallet", logger.UserID(userID), logger.Wallet(walletAddress), zap.String("method", string(MethodDirect)))
	return &BindResult{Updated: true, Method: MethodDirect}, nil
}
