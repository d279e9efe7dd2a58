package messaging

import (
	"context"

	"github.com/feral-file/ff-marketplace/internal/domain"
)

// Publisher defines the interface for publishing marketplace events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a marketplace event
	PublishEvent(ctx context.Context, event *domain.MarketEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(ctx context.Context, event *domain.MarketEvent) error {
	return nil
}

func (noopPublisher) Close() {}
