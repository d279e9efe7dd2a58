package ownership

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/store"
)

// OrphanResult is the outcome of an orphan reconciliation
type OrphanResult struct {
	UpdatedWallet bool
	Reassociated  int64
}

// OrphanReconciler links ownership records stored without a user to the profile owning their wallet
//
//go:generate mockgen -source=orphan.go -destination=../mocks/orphan_reconciler.go -package=mocks -mock_names=OrphanReconciler=MockOrphanReconciler
type OrphanReconciler interface {
	// Reconcile is idempotent: a repeat call reassociates nothing
	Reconcile(ctx context.Context, userID string, walletAddress string) (*OrphanResult, error)
}

type orphanReconciler struct {
	store store.Store
}

// NewOrphanReconciler creates a new orphan reconciler
func NewOrphanReconciler(store store.Store) OrphanReconciler {
	return &orphanReconciler{store: store}
}

func (o *orphanReconciler) Reconcile(ctx context.Context, userID string, walletAddress string) (*OrphanResult, error) {
	profile, err := o.store.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKindPersistence, "ownership.Reconcile", "Failed to fetch user data", err)
	}
	if profile == nil {
		return nil, domain.NewError(domain.ErrorKindProfileNotFound, "ownership.Reconcile", "Failed to fetch user data", domain.ErrProfileNotFound)
	}

	result := &OrphanResult{
		UpdatedWallet: domain.StringOrEmpty(profile.WalletAddress) != walletAddress,
	}

	if result.UpdatedWallet {
		if _, err := o.store.UpdateProfileWallet(ctx, userID, walletAddress, nil); err != nil {
			logger.WarnCtx(ctx, "Failed to update profile wallet", logger.UserID(userID), zap.Error(err))
		}
	}

	count, err := o.store.ReassociateOrphans(ctx, userID, walletAddress)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to reassociate orphaned records: %w", err), logger.UserID(userID), logger.Wallet(walletAddress))
		return result, nil
	}
	result.Reassociated = count

	if count > 0 {
		logger.InfoCtx(ctx, "Reassociated orphaned records",
			logger.UserID(userID),
			logger.Wallet(walletAddress),
			zap.Int64("count", count))
	}

	return result, nil
}
