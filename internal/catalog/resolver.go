package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/providers/publicrest"
	"github.com/feral-file/ff-marketplace/internal/store"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

// Strategy names the lookup that located an item
type Strategy string

const (
	StrategyByID     Strategy = "id"
	StrategyByTitle  Strategy = "title"
	StrategyByParent Strategy = "parent"
	StrategyPublicID Strategy = "public_id"
)

// Resolution is a located item and the strategy that found it
type Resolution struct {
	Item     *schema.Item
	Strategy Strategy
}

// NotFoundError reports that no strategy located the item.
// Available carries a sample of purchasable items for diagnostics.
type NotFoundError struct {
	Identifier string
	Available  []publicrest.Listing
	Causes     []error
}

func (e *NotFoundError) Error() string {
	if len(e.Causes) == 0 {
		return fmt.Sprintf("item %q not found", e.Identifier)
	}
	causes := make([]string, 0, len(e.Causes))
	for _, cause := range e.Causes {
		causes = append(causes, cause.Error())
	}
	return fmt.Sprintf("item %q not found (%s)", e.Identifier, strings.Join(causes, "; "))
}

func (e *NotFoundError) Unwrap() error {
	return domain.NewError(domain.ErrorKindNotFound, "catalog.Resolve", "Track not found", domain.ErrItemNotFound)
}

// Resolver locates items by id, title or parent
//
//go:generate mockgen -source=resolver.go -destination=../mocks/catalog_resolver.go -package=mocks -mock_names=Resolver=MockCatalogResolver
type Resolver interface {
	// Resolve runs the lookup strategies in order and returns the first hit or a *NotFoundError
	Resolve(ctx context.Context, id Identifier) (*Resolution, error)
}

// strategy is one step of the resolution chain.
// A lookup returns (item, nil) when found, (nil, nil) when not found and (nil, err) on failure.
type strategy struct {
	name       Strategy
	privileged bool
	applies    func(id Identifier, privilegedFailed bool) bool
	lookup     func(ctx context.Context, id Identifier) (*schema.Item, error)
}

type resolver struct {
	public     publicrest.Client
	strategies []strategy
}

// NewResolver creates a resolver over the privileged store and the optional public REST tier
func NewResolver(st store.Store, public publicrest.Client) Resolver {
	r := &resolver{public: public}
	r.strategies = []strategy{
		{
			name:       StrategyByID,
			privileged: true,
			applies:    func(id Identifier, _ bool) bool { return id.IsNumeric() },
			lookup: func(ctx context.Context, id Identifier) (*schema.Item, error) {
				return st.GetItemByID(ctx, *id.Numeric)
			},
		},
		{
			name:       StrategyByTitle,
			privileged: true,
			applies:    func(id Identifier, _ bool) bool { return !id.IsNumeric() },
			lookup: func(ctx context.Context, id Identifier) (*schema.Item, error) {
				return st.GetItemByTitle(ctx, id.Raw)
			},
		},
		{
			name:       StrategyByParent,
			privileged: true,
			applies:    func(id Identifier, _ bool) bool { return id.IsNumeric() },
			lookup: func(ctx context.Context, id Identifier) (*schema.Item, error) {
				return st.GetItemByParentID(ctx, *id.Numeric)
			},
		},
		{
			name: StrategyPublicID,
			applies: func(id Identifier, privilegedFailed bool) bool {
				return public != nil && id.IsNumeric() && privilegedFailed
			},
			lookup: func(ctx context.Context, id Identifier) (*schema.Item, error) {
				return public.GetItemByID(ctx, *id.Numeric)
			},
		},
	}
	return r
}

func (r *resolver) Resolve(ctx context.Context, id Identifier) (*Resolution, error) {
	var causes []error
	privilegedFailed := false

	for _, s := range r.strategies {
		if s.privileged && privilegedFailed {
			continue
		}
		if !s.applies(id, privilegedFailed) {
			continue
		}

		item, err := s.lookup(ctx, id)
		if err != nil {
			logger.WarnCtx(ctx, "Item lookup failed",
				zap.String("strategy", string(s.name)),
				zap.String("identifier", id.Raw),
				zap.Error(err))
			causes = append(causes, fmt.Errorf("%s: %w", s.name, err))
			if s.privileged {
				privilegedFailed = true
			}
			continue
		}

		if item != nil {
			logger.DebugCtx(ctx, "Resolved item",
				zap.String("strategy", string(s.name)),
				zap.Int64("item_id", item.ID))
			return &Resolution{Item: item, Strategy: s.name}, nil
		}
	}

	return nil, &NotFoundError{
		Identifier: id.Raw,
		Available:  r.sampleAvailable(ctx),
		Causes:     causes,
	}
}

func (r *resolver) sampleAvailable(ctx context.Context) []publicrest.Listing {
	if r.public == nil {
		return []publicrest.Listing{}
	}

	listings, err := r.public.ListAvailable(ctx, domain.AVAILABLE_SAMPLE_LIMIT)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to sample available items", zap.Error(err))
		return []publicrest.Listing{}
	}
	if listings == nil {
		return []publicrest.Listing{}
	}

	return listings
}

// CheckPurchasable verifies that an item has a positive price and a metadata URL
func CheckPurchasable(item *schema.Item) error {
	if item.PriceMinorUnits == nil || *item.PriceMinorUnits <= 0 {
		return domain.NewError(domain.ErrorKindNotForSale, "catalog.CheckPurchasable",
			"Track found but is not listed for sale", domain.ErrNotForSale)
	}
	if item.MetadataURL == nil || strings.TrimSpace(*item.MetadataURL) == "" {
		return domain.NewError(domain.ErrorKindMissingMetadata, "catalog.CheckPurchasable",
			"Metadata URL missing on track", domain.ErrMissingMetadata)
	}
	return nil
}
