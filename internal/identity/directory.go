package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/store"
)

const (
	ProviderPostgres = "postgres"
	ProviderFirebase = "firebase"
)

// Identity is an auth directory entry
type Identity struct {
	ID            string
	Email         string
	EmailVerified bool
	CreatedAt     time.Time
}

// Directory is the auth identity directory
//
//go:generate mockgen -source=directory.go -destination=../mocks/identity_directory.go -package=mocks -mock_names=Directory=MockIdentityDirectory
type Directory interface {
	// Lookup returns nil when no identity exists for id
	Lookup(ctx context.Context, id string) (*Identity, error)
	// Create creates a pre-verified identity tagged with the crossmint provider
	Create(ctx context.Context, id string, email string) (*Identity, error)
}

type pgDirectory struct {
	store store.Store
}

// NewPostgresDirectory creates a directory backed by the auth_identities table
func NewPostgresDirectory(store store.Store) Directory {
	return &pgDirectory{store: store}
}

func (d *pgDirectory) Lookup(ctx context.Context, id string) (*Identity, error) {
	record, err := d.store.GetAuthIdentity(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	return &Identity{
		ID:            record.ID,
		Email:         record.Email,
		EmailVerified: record.EmailVerified,
		CreatedAt:     record.CreatedAt,
	}, nil
}

func (d *pgDirectory) Create(ctx context.Context, id string, email string) (*Identity, error) {
	metadata, err := json.Marshal(map[string]string{"provider": domain.IDENTITY_PROVIDER_CROSSMINT})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal identity metadata: %w", err)
	}

	record, err := d.store.CreateAuthIdentity(ctx, store.CreateAuthIdentityInput{
		ID:            id,
		Email:         email,
		EmailVerified: true,
		Metadata:      metadata,
	})
	if err != nil {
		return nil, err
	}

	return &Identity{
		ID:            record.ID,
		Email:         record.Email,
		EmailVerified: record.EmailVerified,
		CreatedAt:     record.CreatedAt,
	}, nil
}

type firebaseDirectory struct {
	client adapter.FirebaseAuth
}

// NewFirebaseDirectory creates a directory backed by Firebase Auth
func NewFirebaseDirectory(client adapter.FirebaseAuth) Directory {
	return &firebaseDirectory{client: client}
}

func (d *firebaseDirectory) Lookup(ctx context.Context, id string) (*Identity, error) {
	user, err := d.client.GetUser(ctx, id)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return fromUserRecord(user), nil
}

func (d *firebaseDirectory) Create(ctx context.Context, id string, email string) (*Identity, error) {
	params := (&auth.UserToCreate{}).
		UID(id).
		Email(email).
		EmailVerified(true)

	user, err := d.client.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := d.client.SetCustomUserClaims(ctx, id, map[string]interface{}{
		"provider": domain.IDENTITY_PROVIDER_CROSSMINT,
	}); err != nil {
		return nil, fmt.Errorf("failed to set provider claim: %w", err)
	}

	return fromUserRecord(user), nil
}

func fromUserRecord(user *auth.UserRecord) *Identity {
	identity := &Identity{
		EmailVerified: user.EmailVerified,
	}
	if user.UserInfo != nil {
		identity.ID = user.UserInfo.UID
		identity.Email = user.UserInfo.Email
	}
	if user.UserMetadata != nil && user.UserMetadata.CreationTimestamp > 0 {
		identity.CreatedAt = time.UnixMilli(user.UserMetadata.CreationTimestamp)
	}
	return identity
}
