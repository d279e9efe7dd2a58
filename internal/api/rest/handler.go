package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/api/rest/dto"
	"github.com/feral-file/ff-marketplace/internal/catalog"
	"github.com/feral-file/ff-marketplace/internal/dedup"
	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/identity"
	"github.com/feral-file/ff-marketplace/internal/issuance"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/ownership"
	"github.com/feral-file/ff-marketplace/internal/providers/publicrest"
	"github.com/feral-file/ff-marketplace/internal/purchase"
	"github.com/feral-file/ff-marketplace/internal/wallet"
)

const notFoundNote = "If you expected this id to exist, verify the items table. " +
	"This response includes up to 20 listed items from the public tier for debugging."

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// AuthSync creates the auth identity and profile of a user and binds their wallet
	// POST /api/auth-sync
	AuthSync(c *gin.Context)

	// UpdateUserWallet binds a wallet to a profile
	// POST /api/update-user-wallet
	UpdateUserWallet(c *gin.Context)

	// PurchaseItem mints one edition of an item to the buyer and records ownership
	// POST /api/purchase-track
	PurchaseItem(c *gin.Context)

	// RefreshUserData links orphaned ownership records of a wallet to a user
	// POST /api/refresh-user-data
	RefreshUserData(c *gin.Context)

	// MintItem issues a new item to its creator
	// POST /api/v1/items/mint
	MintItem(c *gin.Context)

	// GetMetadata serves the metadata document of an issued item
	// GET /api/v1/metadata/:id
	GetMetadata(c *gin.Context)

	// HealthCheck reports the status of every dependency
	// GET /health
	HealthCheck(c *gin.Context)
}

// HealthCheck is a named dependency probe
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Dependencies are the services behind the REST handlers
type Dependencies struct {
	Identity  identity.Reconciler
	Wallets   wallet.Binder
	Purchases purchase.Service
	Orphans   ownership.OrphanReconciler
	Issuance  issuance.Service
	// SyncGuard and WalletGuard suppress duplicate identity syncs and wallet updates
	SyncGuard   dedup.Guard
	WalletGuard dedup.Guard
	Clock       adapter.Clock
	Health      []HealthCheck
}

type handler struct {
	debug bool
	deps  Dependencies
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, deps Dependencies) Handler {
	return &handler{
		debug: debug,
		deps:  deps,
	}
}

// claim reports whether a request may proceed. Guard failures let the request through.
func (h *handler) claim(ctx context.Context, guard dedup.Guard, fingerprint string) bool {
	if guard == nil {
		return true
	}
	proceed, err := guard.Claim(ctx, fingerprint, h.deps.Clock.Now())
	if err != nil {
		logger.WarnCtx(ctx, "Dedup guard unavailable, processing request", zap.Error(err))
		return true
	}
	return proceed
}

// fail responds with the mapped error, adding the full error chain in debug mode
func (h *handler) fail(c *gin.Context, env envelope, err error, extra gin.H) {
	if h.debug {
		if extra == nil {
			extra = gin.H{}
		}
		extra["details"] = err.Error()
	}
	respondError(c, env, err, extra)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (h *handler) AuthSync(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AuthSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Email) == "" {
		respondBadRequest(c, envelopeSuccess, "Missing required user information: id and email")
		return
	}

	walletAddress := domain.NormalizeOptionalWallet(req.WalletAddress)
	if !h.claim(ctx, h.deps.SyncGuard, dedup.IdentitySyncFingerprint(req.ID, walletAddress)) {
		logger.InfoCtx(ctx, "Duplicate identity sync suppressed", logger.UserID(req.ID))
		c.JSON(http.StatusOK, dto.DuplicateSyncResponse{
			Success:          true,
			DuplicateRequest: true,
			Message:          "Duplicate request, already processed",
		})
		return
	}

	result, err := h.deps.Identity.Reconcile(ctx, identity.SyncInput{
		ID:               req.ID,
		Email:            req.Email,
		WalletAddress:    walletAddress,
		ProviderWalletID: req.CrossmintWalletID,
	})
	if err != nil {
		h.fail(c, envelopeSuccess, err, nil)
		return
	}

	c.JSON(http.StatusOK, dto.AuthSyncResponse{
		Success:    true,
		AuthUser:   result.AuthUser != nil,
		PublicUser: result.PublicUser != nil,
		Message:    "User synchronized successfully",
	})
}

func (h *handler) UpdateUserWallet(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateUserWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.WalletAddress) == "" {
		respondBadRequest(c, envelopeSuccess, "Missing required fields: userId and walletAddress")
		return
	}
	walletAddress := domain.NormalizeWallet(req.WalletAddress)

	if !h.claim(ctx, h.deps.WalletGuard, dedup.WalletUpdateFingerprint(req.UserID, walletAddress)) {
		logger.InfoCtx(ctx, "Duplicate wallet update suppressed", logger.UserID(req.UserID))
		c.JSON(http.StatusOK, dto.UpdateUserWalletResponse{
			Success:   true,
			Updated:   false,
			Duplicate: true,
			Message:   "Duplicate request detected, already processed recently",
		})
		return
	}

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		h.deps.Identity.EnsureExists(ctx, req.UserID, *req.Email)
	}

	result, err := h.deps.Wallets.Bind(ctx, req.UserID, walletAddress, req.CrossmintWalletID)
	if err != nil {
		h.fail(c, envelopeSuccess, err, nil)
		return
	}

	message := "User wallet information already up to date"
	if result.Updated {
		message = "User wallet information updated successfully"
	}
	c.JSON(http.StatusOK, dto.UpdateUserWalletResponse{
		Success: true,
		Updated: result.Updated,
		Method:  string(result.Method),
		Message: message,
	})
}

func (h *handler) PurchaseItem(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.TrackID) == 0 || strings.TrimSpace(req.BuyerWallet) == "" {
		respondBadRequest(c, envelopeOK, "Missing trackId or buyerWallet")
		return
	}

	id, err := catalog.ParseIdentifier(req.TrackID)
	if err != nil {
		h.fail(c, envelopeOK, err, nil)
		return
	}

	result, err := h.deps.Purchases.Purchase(ctx, purchase.Request{
		Identifier:  id,
		BuyerWallet: domain.NormalizeWallet(req.BuyerWallet),
		UserID:      trimOptional(req.UserID),
	})
	if err != nil {
		h.respondPurchaseError(c, result, err)
		return
	}

	response := dto.PurchaseResponse{
		OK:            true,
		TransactionID: result.TransactionID,
		CrossmintData: result.CrossmintData,
		Track:         result.Item,
		EditionNumber: result.EditionNumber,
		Simulated:     result.Simulated,
	}
	if result.Payment != nil {
		response.Payment = &dto.PaymentSummary{
			TransactionID: result.Payment.TransactionID,
			Amount:        result.Payment.Amount.StringFixed(2),
			Asset:         result.Payment.Asset,
		}
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) respondPurchaseError(c *gin.Context, result *purchase.Result, err error) {
	var notFound *catalog.NotFoundError
	if errors.As(err, &notFound) {
		available := notFound.Available
		if available == nil {
			available = []publicrest.Listing{}
		}
		h.fail(c, envelopeOK, err, gin.H{
			"available":              available,
			"note":                   notFoundNote,
			"totalTracksSampleCount": len(available),
		})
		return
	}

	var chargedErr *purchase.ChargedError
	if errors.As(err, &chargedErr) {
		h.fail(c, envelopeOK, err, gin.H{"paymentTransactionId": chargedErr.PaymentTransactionID})
		return
	}

	var recordErr *purchase.RecordError
	if errors.As(err, &recordErr) {
		extra := gin.H{"transactionId": recordErr.TransactionID}
		if recordErr.PaymentTransactionID != "" {
			extra["paymentTransactionId"] = recordErr.PaymentTransactionID
		}
		h.fail(c, envelopeOK, err, extra)
		return
	}

	switch domain.KindOf(err) {
	case domain.ErrorKindNotForSale, domain.ErrorKindMissingMetadata:
		if result != nil && result.Item != nil {
			h.fail(c, envelopeOK, err, gin.H{"track": dto.NewTrackSummary(result.Item)})
			return
		}
	}
	h.fail(c, envelopeOK, err, nil)
}

func (h *handler) RefreshUserData(c *gin.Context) {
	var req dto.RefreshUserDataRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.WalletAddress) == "" {
		respondBadRequest(c, envelopeSuccess, "Missing userId or walletAddress")
		return
	}

	result, err := h.deps.Orphans.Reconcile(c.Request.Context(), req.UserID, domain.NormalizeWallet(req.WalletAddress))
	if err != nil {
		h.fail(c, envelopeSuccess, err, nil)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshUserDataResponse{
		Success:           true,
		UpdatedWallet:     result.UpdatedWallet,
		OrphanedNftsCount: result.Reassociated,
		Message:           "User data refreshed successfully",
	})
}

func (h *handler) MintItem(c *gin.Context) {
	var req dto.MintItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, envelopeOK, "Missing required fields")
		return
	}

	result, err := h.deps.Issuance.Issue(c.Request.Context(), issuance.Request{
		Title:           req.Title,
		Artist:          req.Artist,
		Album:           req.Album,
		CoverArtURL:     req.CoverArtURL,
		MediaURL:        req.AudioFileURL,
		ReleaseDate:     req.ReleaseDate,
		WalletAddress:   req.WalletAddress,
		PriceMinorUnits: req.PriceCents,
	})
	if err != nil {
		h.fail(c, envelopeOK, err, nil)
		return
	}

	c.JSON(http.StatusOK, dto.MintItemResponse{
		OK:            true,
		TrackID:       result.ItemID,
		MetadataURL:   result.MetadataURL,
		TransactionID: result.TransactionID,
		CrossmintData: result.CrossmintData,
	})
}

func (h *handler) GetMetadata(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, envelopeOK, "Invalid track id")
		return
	}

	document, err := h.deps.Issuance.Metadata(c.Request.Context(), id)
	if err != nil {
		h.fail(c, envelopeOK, err, nil)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", document)
}

func (h *handler) HealthCheck(c *gin.Context) {
	response := dto.HealthResponse{
		OK:     true,
		Checks: make(map[string]dto.HealthCheckResult, len(h.deps.Health)),
	}

	for _, check := range h.deps.Health {
		ctx, cancel := context.WithTimeout(c.Request.Context(), domain.HEALTH_CHECK_TIMEOUT)
		start := h.deps.Clock.Now()
		err := check.Check(ctx)
		cancel()

		result := dto.HealthCheckResult{
			OK:        err == nil,
			LatencyMs: h.deps.Clock.Since(start).Milliseconds(),
		}
		if err != nil {
			result.Error = err.Error()
			response.OK = false
			logger.WarnCtx(c.Request.Context(), "Health check failed", zap.String("check", check.Name), zap.Error(err))
		}
		response.Checks[check.Name] = result
	}

	status := http.StatusOK
	if !response.OK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
