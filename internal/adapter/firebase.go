package adapter

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseAuth defines the subset of Firebase Auth admin operations used for identity directory access
//
//go:generate mockgen -source=firebase.go -destination=../mocks/firebase.go -package=mocks -mock_names=FirebaseAuth=MockFirebaseAuth
type FirebaseAuth interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error
}

// NewFirebaseAuth creates a Firebase Auth admin client.
// An empty credentialsFile falls back to application default credentials.
func NewFirebaseAuth(ctx context.Context, projectID string, credentialsFile string) (FirebaseAuth, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return client, nil
}
