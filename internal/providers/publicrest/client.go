package publicrest

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

// Listing is the reduced item projection used for the available sample
type Listing struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	PriceMinorUnits *int64            `json:"price_minor_units"`
	Status          schema.ItemStatus `json:"status"`
}

// Client defines the interface for the public REST tier to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/publicrest_client.go -package=mocks -mock_names=Client=MockPublicRESTClient
type Client interface {
	// GetItemByID returns nil when no item matches
	GetItemByID(ctx context.Context, id int64) (*schema.Item, error)

	// ListAvailable returns listed or minted items that carry a price
	ListAvailable(ctx context.Context, limit int) ([]Listing, error)
}

// itemRow mirrors the items row as the REST tier serializes it.
// Dates come back as plain strings.
type itemRow struct {
	ID                 int64             `json:"id"`
	Title              string            `json:"title"`
	Artist             string            `json:"artist"`
	Album              *string           `json:"album"`
	CoverArtURL        *string           `json:"cover_art_url"`
	MediaURL           *string           `json:"media_url"`
	ReleaseDate        *string           `json:"release_date"`
	PriceMinorUnits    *int64            `json:"price_minor_units"`
	Status             schema.ItemStatus `json:"status"`
	MetadataURL        *string           `json:"metadata_url"`
	Metadata           datatypes.JSON    `json:"metadata"`
	OwnerWalletAddress *string           `json:"owner_wallet_address"`
	TransactionID      *string           `json:"transaction_id"`
	MintedCount        int               `json:"minted_count"`
	ParentItemID       *int64            `json:"parent_item_id"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func (r itemRow) toItem() *schema.Item {
	item := &schema.Item{
		ID:                 r.ID,
		Title:              r.Title,
		Artist:             r.Artist,
		Album:              r.Album,
		CoverArtURL:        r.CoverArtURL,
		MediaURL:           r.MediaURL,
		PriceMinorUnits:    r.PriceMinorUnits,
		Status:             r.Status,
		MetadataURL:        r.MetadataURL,
		Metadata:           r.Metadata,
		OwnerWalletAddress: r.OwnerWalletAddress,
		TransactionID:      r.TransactionID,
		MintedCount:        r.MintedCount,
		ParentItemID:       r.ParentItemID,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.ReleaseDate != nil {
		if t, err := time.Parse("2006-01-02", (*r.ReleaseDate)[:min(len(*r.ReleaseDate), 10)]); err == nil {
			item.ReleaseDate = &t
		}
	}
	return item
}

// PublicRESTClient reads items through the PostgREST endpoint with the anon key
type PublicRESTClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
	anonKey    string
}

// NewClient creates a new public REST client
func NewClient(httpClient adapter.HTTPClient, baseURL string, anonKey string) Client {
	return &PublicRESTClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		anonKey:    anonKey,
	}
}

func (c *PublicRESTClient) headers() map[string]string {
	return map[string]string{
		"apikey":        c.anonKey,
		"Authorization": "Bearer " + c.anonKey,
		"Accept":        "application/json",
	}
}

// GetItemByID fetches a single item by primary key
func (c *PublicRESTClient) GetItemByID(ctx context.Context, id int64) (*schema.Item, error) {
	query := url.Values{}
	query.Set("id", fmt.Sprintf("eq.%d", id))
	query.Set("select", "*")
	query.Set("limit", "1")
	endpoint := fmt.Sprintf("%s/rest/v1/items?%s", c.baseURL, query.Encode())

	var rows []itemRow
	if err := c.httpClient.Get(ctx, endpoint, c.headers(), &rows); err != nil {
		return nil, tagError("publicrest.GetItemByID", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0].toItem(), nil
}

// ListAvailable fetches up to limit purchasable items
func (c *PublicRESTClient) ListAvailable(ctx context.Context, limit int) ([]Listing, error) {
	if limit <= 0 {
		limit = domain.AVAILABLE_SAMPLE_LIMIT
	}

	query := url.Values{}
	query.Set("select", "id,title,price_minor_units,status")
	query.Set("price_minor_units", "not.is.null")
	query.Set("status", fmt.Sprintf("in.(%s,%s)", schema.ItemStatusListed, schema.ItemStatusMinted))
	query.Set("order", "id.asc")
	query.Set("limit", fmt.Sprintf("%d", limit))
	endpoint := fmt.Sprintf("%s/rest/v1/items?%s", c.baseURL, query.Encode())

	var listings []Listing
	if err := c.httpClient.Get(ctx, endpoint, c.headers(), &listings); err != nil {
		return nil, tagError("publicrest.ListAvailable", err)
	}

	logger.DebugCtx(ctx, "Fetched available listings", zap.Int("count", len(listings)))

	return listings, nil
}

func tagError(op string, err error) error {
	var statusErr *adapter.HTTPStatusError
	if errors.As(err, &statusErr) {
		return domain.NewError(domain.ErrorKindUpstream, op, fmt.Sprintf("public tier returned status %d", statusErr.StatusCode), err)
	}
	return domain.NewError(domain.ErrorKindTransport, op, "public tier request failed", err)
}
