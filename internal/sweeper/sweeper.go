package sweeper

import (
	"context"
)

// Sweeper is a long-running background task that performs periodic maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweep loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop waits for the in-flight cycle to finish
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
