package identity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/store"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
	"github.com/feral-file/ff-marketplace/internal/wallet"
)

// SyncInput is an identity sync request. Wallet fields are nil when not supplied.
type SyncInput struct {
	ID               string
	Email            string
	WalletAddress    *string
	ProviderWalletID *string
}

// SyncResult is the state after a sync
type SyncResult struct {
	AuthUser   *Identity
	PublicUser *schema.UserProfile
	// WalletBind is nil when no binding was attempted
	WalletBind *wallet.BindResult
}

// Reconciler makes the auth identity, the profile and the wallet binding agree with a sync request
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/identity_reconciler.go -package=mocks -mock_names=Reconciler=MockIdentityReconciler
type Reconciler interface {
	// Reconcile is idempotent: repeating a successful call creates nothing new
	Reconcile(ctx context.Context, input SyncInput) (*SyncResult, error)
	// EnsureExists creates the identity and profile when absent. Failures are logged, never returned.
	EnsureExists(ctx context.Context, id string, email string)
}

type reconciler struct {
	directory Directory
	store     store.Store
	binder    wallet.Binder
}

// NewReconciler creates a new identity reconciler
func NewReconciler(directory Directory, store store.Store, binder wallet.Binder) Reconciler {
	return &reconciler{
		directory: directory,
		store:     store,
		binder:    binder,
	}
}

func (r *reconciler) Reconcile(ctx context.Context, input SyncInput) (*SyncResult, error) {
	result := &SyncResult{}

	authUser, err := r.directory.Lookup(ctx, input.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Auth identity lookup failed, treating as absent", logger.UserID(input.ID), zap.Error(err))
		authUser = nil
	}

	if authUser == nil {
		authUser, err = r.directory.Create(ctx, input.ID, input.Email)
		if err != nil {
			return nil, domain.NewError(domain.ErrorKindPersistence, "identity.Reconcile",
				fmt.Sprintf("Failed to create auth user: %v", err),
				fmt.Errorf("%w: %w", domain.ErrAuthIdentityCreationFailed, err))
		}
		logger.InfoCtx(ctx, "Created auth identity", logger.UserID(input.ID))
	}
	result.AuthUser = authUser

	profile, err := r.store.GetUserProfile(ctx, input.ID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to load user profile: %w", err), logger.UserID(input.ID))
		profile = nil
	}

	if profile == nil {
		profile, err = r.store.CreateUserProfile(ctx, store.CreateUserProfileInput{
			ID:               input.ID,
			Email:            input.Email,
			WalletAddress:    input.WalletAddress,
			WalletProviderID: input.ProviderWalletID,
		})
		if err != nil {
			return nil, domain.NewError(domain.ErrorKindPersistence, "identity.Reconcile",
				fmt.Sprintf("Failed to create public user: %v", err),
				fmt.Errorf("%w: %w", domain.ErrProfileCreationFailed, err))
		}
		logger.InfoCtx(ctx, "Created user profile", logger.UserID(input.ID))
	} else if input.WalletAddress != nil && domain.StringOrEmpty(profile.WalletAddress) != *input.WalletAddress {
		bind, err := r.binder.Bind(ctx, input.ID, *input.WalletAddress, input.ProviderWalletID)
		if err != nil {
			return nil, err
		}
		result.WalletBind = bind

		walletAddress := *input.WalletAddress
		profile.WalletAddress = &walletAddress
		if input.ProviderWalletID != nil {
			profile.WalletProviderID = input.ProviderWalletID
		}
	}
	result.PublicUser = profile

	if input.WalletAddress != nil {
		r.ensureWalletRecord(ctx, input.ID, *input.WalletAddress)
	}

	return result, nil
}

func (r *reconciler) ensureWalletRecord(ctx context.Context, userID string, walletAddress string) {
	created, err := r.store.EnsureWalletRecord(ctx, store.EnsureWalletRecordInput{
		UserID:        userID,
		WalletAddress: walletAddress,
		IsPrimary:     true,
		WalletKind:    string(domain.ClassifyWallet(walletAddress)),
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record wallet: %w", err), logger.UserID(userID), logger.Wallet(walletAddress))
		return
	}
	if created {
		logger.InfoCtx(ctx, "Recorded wallet", logger.UserID(userID), logger.Wallet(walletAddress))
	}
}

func (r *reconciler) EnsureExists(ctx context.Context, id string, email string) {
	authUser, err := r.directory.Lookup(ctx, id)
	if err != nil || authUser == nil {
		if _, err := r.directory.Create(ctx, id, email); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to create auth identity: %w", err), logger.UserID(id))
		}
	}

	profile, err := r.store.GetUserProfile(ctx, id)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load user profile", logger.UserID(id), zap.Error(err))
		return
	}
	if profile != nil {
		return
	}

	if _, err := r.store.CreateUserProfile(ctx, store.CreateUserProfileInput{ID: id, Email: email}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to create user profile: %w", err), logger.UserID(id))
	}
}
