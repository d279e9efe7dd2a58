package issuance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/messaging"
	"github.com/feral-file/ff-marketplace/internal/mint"
	"github.com/feral-file/ff-marketplace/internal/store"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

const releaseDateLayout = "2006-01-02"

// Request describes a new item issued by its creator
type Request struct {
	Title         string
	Artist        string
	Album         *string
	CoverArtURL   string
	MediaURL      string
	ReleaseDate   *string
	WalletAddress string
	// PriceMinorUnits lists the item for sale when positive
	PriceMinorUnits *int64
}

// Result is an issued item
type Result struct {
	ItemID        int64
	MetadataURL   string
	TransactionID *string
	CrossmintData map[string]interface{}
	Simulated     bool
}

// Metadata is the document a minted token points at
type Metadata struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Attributes   MetadataAttributes     `json:"attributes"`
	Image        string                 `json:"image"`
	AnimationURL string                 `json:"animation_url"`
	ExternalURL  *string                `json:"external_url"`
	Properties   map[string]interface{} `json:"properties"`
	TrackID      int64                  `json:"trackId"`
}

// MetadataAttributes are the descriptive attributes of an item
type MetadataAttributes struct {
	Artist      string  `json:"artist"`
	Album       *string `json:"album"`
	ReleaseDate *string `json:"releaseDate"`
}

// Service issues new items and serves their metadata
//
//go:generate mockgen -source=service.go -destination=../mocks/issuance_service.go -package=mocks -mock_names=Service=MockIssuanceService
type Service interface {
	// Issue inserts a pending item, stores its metadata document and mints it to the creator wallet
	Issue(ctx context.Context, req Request) (*Result, error)
	// Metadata returns the stored metadata document of an item
	Metadata(ctx context.Context, itemID int64) (datatypes.JSON, error)
}

type service struct {
	store         store.Store
	gateway       mint.Gateway
	publisher     messaging.Publisher
	json          adapter.JSON
	clock         adapter.Clock
	publicBaseURL string
}

// NewService creates an issuance service. Metadata URLs are built from publicBaseURL.
func NewService(
	st store.Store,
	gateway mint.Gateway,
	publisher messaging.Publisher,
	json adapter.JSON,
	clock adapter.Clock,
	publicBaseURL string,
) Service {
	return &service{
		store:         st,
		gateway:       gateway,
		publisher:     publisher,
		json:          json,
		clock:         clock,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// MetadataURL returns the public URL of an item's metadata document
func MetadataURL(publicBaseURL string, itemID int64) string {
	return fmt.Sprintf("%s/api/v1/metadata/%d", strings.TrimRight(publicBaseURL, "/"), itemID)
}

func validate(req Request) (*time.Time, error) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Artist) == "" ||
		strings.TrimSpace(req.CoverArtURL) == "" ||
		strings.TrimSpace(req.MediaURL) == "" ||
		strings.TrimSpace(req.WalletAddress) == "" {
		return nil, domain.NewError(domain.ErrorKindValidation, "issuance.Issue", "Missing required fields", nil)
	}
	if req.PriceMinorUnits != nil && *req.PriceMinorUnits < 0 {
		return nil, domain.NewError(domain.ErrorKindValidation, "issuance.Issue", "priceCents must not be negative", nil)
	}
	if req.ReleaseDate == nil || *req.ReleaseDate == "" {
		return nil, nil
	}
	releaseDate, err := time.Parse(releaseDateLayout, *req.ReleaseDate)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKindValidation, "issuance.Issue", "releaseDate must be YYYY-MM-DD", err)
	}
	return &releaseDate, nil
}

func (s *service) Issue(ctx context.Context, req Request) (*Result, error) {
	releaseDate, err := validate(req)
	if err != nil {
		return nil, err
	}
	wallet := domain.NormalizeWallet(req.WalletAddress)
	coverArt := req.CoverArtURL
	media := req.MediaURL

	item, err := s.store.CreateItem(ctx, store.CreateItemInput{
		Title:           req.Title,
		Artist:          req.Artist,
		Album:           req.Album,
		CoverArtURL:     &coverArt,
		MediaURL:        &media,
		ReleaseDate:     releaseDate,
		PriceMinorUnits: req.PriceMinorUnits,
		Status:          schema.ItemStatusPending,
	})
	if err != nil {
		return nil, domain.NewError(domain.ErrorKindPersistence, "issuance.Issue", "Failed to create track record", err)
	}

	var releaseDateText *string
	if releaseDate != nil {
		formatted := releaseDate.Format(releaseDateLayout)
		releaseDateText = &formatted
	}
	document, err := s.json.Marshal(Metadata{
		Name:        req.Title,
		Description: fmt.Sprintf("%s by %s", req.Title, req.Artist),
		Attributes: MetadataAttributes{
			Artist:      req.Artist,
			Album:       req.Album,
			ReleaseDate: releaseDateText,
		},
		Image:        coverArt,
		AnimationURL: media,
		Properties:   map[string]interface{}{},
		TrackID:      item.ID,
	})
	if err != nil {
		s.markFailed(ctx, item.ID)
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	metadataURL := MetadataURL(s.publicBaseURL, item.ID)
	if err := s.store.SetItemMetadata(ctx, item.ID, metadataURL, datatypes.JSON(document)); err != nil {
		s.markFailed(ctx, item.ID)
		return nil, domain.NewError(domain.ErrorKindPersistence, "issuance.Issue", "Failed to store metadata", err)
	}

	minted, err := s.gateway.Mint(ctx, wallet, metadataURL)
	if err != nil {
		s.markFailed(ctx, item.ID)
		return nil, err
	}

	status := schema.ItemStatusError
	if minted.TransactionID != nil {
		status = schema.ItemStatusMinted
	}
	if err := s.store.UpdateItemMintResult(ctx, item.ID, store.UpdateItemMintResultInput{
		Status:             status,
		OwnerWalletAddress: &wallet,
		TransactionID:      minted.TransactionID,
	}); err != nil {
		return nil, domain.NewError(domain.ErrorKindPersistence, "issuance.Issue", "Failed to update track record", err)
	}

	if minted.TransactionID != nil && s.publisher != nil {
		event := &domain.MarketEvent{
			EventType:     domain.EventTypeItemMinted,
			ItemID:        item.ID,
			WalletAddress: wallet,
			TransactionID: minted.TransactionID,
			Simulated:     minted.Simulated,
			Timestamp:     s.clock.Now(),
		}
		if err := s.publisher.PublishEvent(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish event", zap.String("event_type", string(event.EventType)), zap.Error(err))
		}
	}

	logger.InfoCtx(ctx, "Issued item",
		zap.Int64("item_id", item.ID),
		zap.String("status", string(status)),
		logger.Wallet(wallet))

	return &Result{
		ItemID:        item.ID,
		MetadataURL:   metadataURL,
		TransactionID: minted.TransactionID,
		CrossmintData: minted.Raw,
		Simulated:     minted.Simulated,
	}, nil
}

func (s *service) markFailed(ctx context.Context, itemID int64) {
	err := s.store.UpdateItemMintResult(ctx, itemID, store.UpdateItemMintResultInput{Status: schema.ItemStatusError})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to mark item as errored", zap.Int64("item_id", itemID), zap.Error(err))
	}
}

func (s *service) Metadata(ctx context.Context, itemID int64) (datatypes.JSON, error) {
	item, err := s.store.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKindPersistence, "issuance.Metadata", "Failed to load track", err)
	}
	if item == nil || len(item.Metadata) == 0 {
		return nil, domain.NewError(domain.ErrorKindNotFound, "issuance.Metadata", "Metadata not found", domain.ErrItemNotFound)
	}
	return item.Metadata, nil
}
