package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace/internal/api/rest"
	"github.com/feral-file/ff-marketplace/internal/catalog"
	"github.com/feral-file/ff-marketplace/internal/dedup"
	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/identity"
	"github.com/feral-file/ff-marketplace/internal/issuance"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/mocks"
	"github.com/feral-file/ff-marketplace/internal/ownership"
	"github.com/feral-file/ff-marketplace/internal/payment"
	"github.com/feral-file/ff-marketplace/internal/providers/publicrest"
	"github.com/feral-file/ff-marketplace/internal/purchase"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
	"github.com/feral-file/ff-marketplace/internal/wallet"
)

const (
	userID = "cm-user-0001-abcdef"
	email  = "buyer@example.com"
	buyer  = "0x4444444444444444444444444444444444444444"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic("failed to initialize logger for tests: " + err.Error())
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

type testHandlerMocks struct {
	identity  *mocks.MockIdentityReconciler
	wallets   *mocks.MockWalletBinder
	purchases *mocks.MockPurchaseService
	orphans   *mocks.MockOrphanReconciler
	issuance  *mocks.MockIssuanceService
	clock     *mocks.MockClock
	router    *gin.Engine
}

func setupHandler(t *testing.T, health ...rest.HealthCheck) *testHandlerMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tm := &testHandlerMocks{
		identity:  mocks.NewMockIdentityReconciler(ctrl),
		wallets:   mocks.NewMockWalletBinder(ctrl),
		purchases: mocks.NewMockPurchaseService(ctrl),
		orphans:   mocks.NewMockOrphanReconciler(ctrl),
		issuance:  mocks.NewMockIssuanceService(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	deps := rest.Dependencies{
		Identity:    tm.identity,
		Wallets:     tm.wallets,
		Purchases:   tm.purchases,
		Orphans:     tm.orphans,
		Issuance:    tm.issuance,
		SyncGuard:   dedup.NewMemoryGuard(dedup.Config{}),
		WalletGuard: dedup.NewMemoryGuard(dedup.Config{}),
		Clock:       tm.clock,
		Health:      health,
	}
	tm.router = gin.New()
	rest.SetupRoutes(tm.router, rest.NewHandler(false, deps), nil)
	return tm
}

func (tm *testHandlerMocks) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthSync_MissingFields(t *testing.T) {
	tm := setupHandler(t)

	for _, body := range []string{`{}`, `{"id":"u1"}`, `{"email":"a@b.c"}`, `not json`} {
		w := tm.do(http.MethodPost, "/api/auth-sync", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		got := decode(t, w)
		assert.Equal(t, false, got["success"])
		assert.Equal(t, "Missing required user information: id and email", got["error"])
		assert.Equal(t, "validation", got["code"])
	}
}

func TestAuthSync_DuplicateWithinWindow(t *testing.T) {
	tm := setupHandler(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	body := `{"id":"` + userID + `","email":"` + email + `","walletAddress":"` + buyer + `"}`

	gomock.InOrder(
		tm.clock.EXPECT().Now().Return(start),
		tm.clock.EXPECT().Now().Return(start.Add(10*time.Second)),
		tm.clock.EXPECT().Now().Return(start.Add(31*time.Second)),
	)
	tm.identity.EXPECT().
		Reconcile(gomock.Any(), identity.SyncInput{ID: userID, Email: email, WalletAddress: strPtr(buyer)}).
		Return(&identity.SyncResult{
			AuthUser:   &identity.Identity{ID: userID},
			PublicUser: &schema.UserProfile{ID: userID},
		}, nil).
		Times(2)

	first := decode(t, tm.do(http.MethodPost, "/api/auth-sync", body))
	assert.Equal(t, true, first["success"])
	assert.Equal(t, true, first["authUser"])
	assert.Equal(t, true, first["publicUser"])
	assert.Equal(t, "User synchronized successfully", first["message"])

	second := decode(t, tm.do(http.MethodPost, "/api/auth-sync", body))
	assert.Equal(t, true, second["success"])
	assert.Equal(t, true, second["duplicateRequest"])

	third := decode(t, tm.do(http.MethodPost, "/api/auth-sync", body))
	assert.Nil(t, third["duplicateRequest"])
	assert.Equal(t, true, third["authUser"])
}

func TestAuthSync_FatalStep(t *testing.T) {
	tm := setupHandler(t)

	tm.clock.EXPECT().Now().Return(time.Now()).Times(1)
	tm.identity.EXPECT().
		Reconcile(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewError(domain.ErrorKindPersistence, "identity.Reconcile",
			"Failed to create auth user: boom", domain.ErrAuthIdentityCreationFailed)).
		Times(1)

	w := tm.do(http.MethodPost, "/api/auth-sync", `{"id":"u1","email":"a@b.c"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	got := decode(t, w)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Failed to create auth user: boom", got["error"])
	assert.Equal(t, "persistence", got["code"])
}

func TestUpdateUserWallet_EnsuresIdentityThenBinds(t *testing.T) {
	tm := setupHandler(t)
	now := time.Now()

	tm.clock.EXPECT().Now().Return(now).Times(2)
	gomock.InOrder(
		tm.identity.EXPECT().EnsureExists(gomock.Any(), userID, email).Times(1),
		tm.wallets.EXPECT().
			Bind(gomock.Any(), userID, buyer, strPtr("cw-1")).
			Return(&wallet.BindResult{Updated: true, Method: wallet.MethodRPC}, nil).
			Times(1),
	)

	body := `{"userId":"` + userID + `","walletAddress":" ` + buyer + ` ","crossmintWalletId":"cw-1","email":"` + email + `"}`
	w := tm.do(http.MethodPost, "/api/update-user-wallet", body)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, true, got["updated"])
	assert.Equal(t, "rpc", got["method"])
	assert.Equal(t, "User wallet information updated successfully", got["message"])

	dup := decode(t, tm.do(http.MethodPost, "/api/update-user-wallet", body))
	assert.Equal(t, true, dup["success"])
	assert.Equal(t, false, dup["updated"])
	assert.Equal(t, true, dup["duplicate"])
}

func TestUpdateUserWallet_AlreadyUpToDate(t *testing.T) {
	tm := setupHandler(t)

	tm.clock.EXPECT().Now().Return(time.Now()).Times(1)
	tm.identity.EXPECT().EnsureExists(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	tm.wallets.EXPECT().Bind(gomock.Any(), userID, buyer, nil).Return(&wallet.BindResult{Updated: false}, nil).Times(1)

	w := tm.do(http.MethodPost, "/api/update-user-wallet", `{"userId":"`+userID+`","walletAddress":"`+buyer+`"}`)

	got := decode(t, w)
	assert.Equal(t, false, got["updated"])
	assert.Nil(t, got["method"])
	assert.Equal(t, "User wallet information already up to date", got["message"])
}

func TestUpdateUserWallet_GuardFailureFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := mocks.NewMockDedupGuard(ctrl)
	binder := mocks.NewMockWalletBinder(ctrl)
	clock := mocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(time.Now()).Times(1)
	guard.EXPECT().Claim(gomock.Any(), userID+":"+buyer, gomock.Any()).Return(false, errors.New("redis down")).Times(1)
	binder.EXPECT().Bind(gomock.Any(), userID, buyer, nil).Return(&wallet.BindResult{Updated: true, Method: wallet.MethodDirect}, nil).Times(1)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(false, rest.Dependencies{Wallets: binder, WalletGuard: guard, Clock: clock}), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/update-user-wallet", strings.NewReader(`{"userId":"`+userID+`","walletAddress":"`+buyer+`"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "direct", decode(t, w)["method"])
}

func TestUpdateUserWallet_BindFailure(t *testing.T) {
	tm := setupHandler(t)

	tm.clock.EXPECT().Now().Return(time.Now()).Times(1)
	tm.wallets.EXPECT().Bind(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewError(domain.ErrorKindPersistence, "wallet.Bind", "no profile row matched", domain.ErrWalletBindFailed)).
		Times(1)

	w := tm.do(http.MethodPost, "/api/update-user-wallet", `{"userId":"u1","walletAddress":"`+buyer+`"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func listedItem() *schema.Item {
	return &schema.Item{
		ID:              7,
		Title:           "Seven",
		PriceMinorUnits: int64Ptr(1500),
		Status:          schema.ItemStatusListed,
		MetadataURL:     strPtr("https://example.com/api/v1/metadata/7"),
	}
}

func TestPurchaseItem_Success(t *testing.T) {
	tm := setupHandler(t)

	tm.purchases.EXPECT().
		Purchase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req purchase.Request) (*purchase.Result, error) {
			require.True(t, req.Identifier.IsNumeric())
			assert.Equal(t, int64(7), *req.Identifier.Numeric)
			assert.Equal(t, buyer, req.BuyerWallet)
			assert.Equal(t, userID, *req.UserID)
			edition := 2
			return &purchase.Result{
				TransactionID: strPtr("0xabc"),
				CrossmintData: map[string]interface{}{"transactionId": "0xabc"},
				Item:          listedItem(),
				EditionNumber: &edition,
				Payment: &payment.ChargeResult{
					TransactionID: "pay-1",
					Amount:        decimal.New(1500, -2),
					Asset:         "USDXM",
				},
			}, nil
		}).
		Times(1)

	w := tm.do(http.MethodPost, "/api/purchase-track", `{"trackId":"7","buyerWallet":"`+buyer+`","userId":"`+userID+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, true, got["ok"])
	assert.Equal(t, "0xabc", got["transactionId"])
	assert.Equal(t, float64(2), got["editionNumber"])
	track := got["track"].(map[string]interface{})
	assert.Equal(t, float64(7), track["id"])
	paid := got["payment"].(map[string]interface{})
	assert.Equal(t, "15.00", paid["amount"])
}

func TestPurchaseItem_BadInput(t *testing.T) {
	tm := setupHandler(t)
	tm.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing trackId", `{"buyerWallet":"` + buyer + `"}`, "Missing trackId or buyerWallet"},
		{"missing buyer", `{"trackId":7}`, "Missing trackId or buyerWallet"},
		{"zero trackId", `{"trackId":0,"buyerWallet":"` + buyer + `"}`, "Missing or invalid trackId"},
		{"null trackId", `{"trackId":null,"buyerWallet":"` + buyer + `"}`, "Missing or invalid trackId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tm.do(http.MethodPost, "/api/purchase-track", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			got := decode(t, w)
			assert.Equal(t, false, got["ok"])
			assert.Equal(t, tt.message, got["error"])
		})
	}
}

func TestPurchaseItem_NotFoundIncludesSample(t *testing.T) {
	tm := setupHandler(t)

	tm.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, &catalog.NotFoundError{
		Identifier: "404",
		Available: []publicrest.Listing{
			{ID: 1, Title: "One", PriceMinorUnits: int64Ptr(100), Status: schema.ItemStatusListed},
			{ID: 2, Title: "Two", PriceMinorUnits: int64Ptr(200), Status: schema.ItemStatusMinted},
		},
	}).Times(1)

	w := tm.do(http.MethodPost, "/api/purchase-track", `{"trackId":404,"buyerWallet":"`+buyer+`"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Track not found", got["error"])
	assert.Len(t, got["available"], 2)
	assert.Equal(t, float64(2), got["totalTracksSampleCount"])
	assert.NotEmpty(t, got["note"])
}

func TestPurchaseItem_NotFoundWithoutSample(t *testing.T) {
	tm := setupHandler(t)

	tm.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, &catalog.NotFoundError{Identifier: "ghost"}).Times(1)

	w := tm.do(http.MethodPost, "/api/purchase-track", `{"trackId":"ghost","buyerWallet":"`+buyer+`"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	got := decode(t, w)
	assert.Equal(t, []interface{}{}, got["available"])
}

func TestPurchaseItem_NotForSale(t *testing.T) {
	tm := setupHandler(t)
	item := listedItem()
	item.PriceMinorUnits = nil

	tm.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(&purchase.Result{Item: item},
		domain.NewError(domain.ErrorKindNotForSale, "catalog.CheckPurchasable", "Track found but is not listed for sale", domain.ErrNotForSale)).
		Times(1)

	w := tm.do(http.MethodPost, "/api/purchase-track", `{"trackId":7,"buyerWallet":"`+buyer+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Track found but is not listed for sale", got["error"])
	assert.Equal(t, "not_for_sale", got["code"])
	track := got["track"].(map[string]interface{})
	assert.Equal(t, float64(7), track["id"])
	assert.Nil(t, track["price_cents"])
}

func TestPurchaseItem_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		extra  string
	}{
		{
			name:   "payment failed",
			err:    domain.NewError(domain.ErrorKindPaymentFailed, "payment.Charge", "insufficient funds", domain.ErrPaymentFailed),
			status: http.StatusPaymentRequired,
		},
		{
			name:   "gateway failed",
			err:    domain.NewError(domain.ErrorKindUpstream, "crossmint.Mint", "quota exceeded", domain.ErrMintGatewayFailed),
			status: http.StatusInternalServerError,
		},
		{
			name: "ownership not recorded",
			err: &purchase.RecordError{TransactionID: "0xabc",
				Err: domain.NewError(domain.ErrorKindPersistence, "ownership.Record", "Failed to record ownership", domain.ErrOwnershipRecordFailed)},
			status: http.StatusInternalServerError,
			extra:  "transactionId",
		},
		{
			name: "charged but mint failed",
			err: &purchase.ChargedError{PaymentTransactionID: "pay_1",
				Err: domain.NewError(domain.ErrorKindUpstream, "crossmint.Mint", "quota exceeded", domain.ErrMintGatewayFailed)},
			status: http.StatusInternalServerError,
			extra:  "paymentTransactionId",
		},
		{
			name: "charged but ownership not recorded",
			err: &purchase.RecordError{TransactionID: "0xabc", PaymentTransactionID: "pay_2",
				Err: domain.NewError(domain.ErrorKindPersistence, "ownership.Record", "Failed to record ownership", domain.ErrOwnershipRecordFailed)},
			status: http.StatusInternalServerError,
			extra:  "paymentTransactionId",
		},
		{
			name:   "untagged",
			err:    errors.New("unexpected"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupHandler(t)
			tm.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)

			w := tm.do(http.MethodPost, "/api/purchase-track", `{"trackId":7,"buyerWallet":"`+buyer+`"}`)

			assert.Equal(t, tt.status, w.Code)
			got := decode(t, w)
			assert.Equal(t, false, got["ok"])
			assert.NotEmpty(t, got["error"])
			if tt.extra != "" {
				assert.Contains(t, got, tt.extra)
			}
		})
	}
}

func TestPurchaseItem_ChargedMintFailureReturnsPaymentID(t *testing.T) {
	tm := setupHandler(t)
	tm.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, &purchase.ChargedError{
		PaymentTransactionID: "pay_1",
		Err:                  domain.NewError(domain.ErrorKindUpstream, "crossmint.Mint", "Mint request failed", domain.ErrMintGatewayFailed),
	}).Times(1)

	w := tm.do(http.MethodPost, "/api/purchase-track", `{"trackId":7,"buyerWallet":"`+buyer+`"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	got := decode(t, w)
	assert.Equal(t, "pay_1", got["paymentTransactionId"])
	assert.Equal(t, "Mint request failed", got["error"])
	assert.Equal(t, string(domain.ErrorKindUpstream), got["code"])
	assert.NotContains(t, got, "transactionId")
}

func TestRefreshUserData(t *testing.T) {
	tm := setupHandler(t)

	tm.orphans.EXPECT().Reconcile(gomock.Any(), userID, buyer).Return(&ownership.OrphanResult{UpdatedWallet: true, Reassociated: 3}, nil).Times(1)

	w := tm.do(http.MethodPost, "/api/refresh-user-data", `{"userId":"`+userID+`","walletAddress":"`+buyer+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, true, got["success"])
	assert.Equal(t, true, got["updatedWallet"])
	assert.Equal(t, float64(3), got["orphanedNftsCount"])
}

func TestRefreshUserData_Errors(t *testing.T) {
	tm := setupHandler(t)

	w := tm.do(http.MethodPost, "/api/refresh-user-data", `{"userId":"`+userID+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing userId or walletAddress", decode(t, w)["error"])

	tm.orphans.EXPECT().Reconcile(gomock.Any(), userID, buyer).
		Return(nil, domain.NewError(domain.ErrorKindProfileNotFound, "ownership.Reconcile", "User not found", domain.ErrProfileNotFound)).
		Times(1)

	w = tm.do(http.MethodPost, "/api/refresh-user-data", `{"userId":"`+userID+`","walletAddress":"`+buyer+`"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "profile_not_found", decode(t, w)["code"])
}

func TestMintItem(t *testing.T) {
	tm := setupHandler(t)

	tm.issuance.EXPECT().
		Issue(gomock.Any(), issuance.Request{
			Title:           "Night Drive",
			Artist:          "Nova",
			CoverArtURL:     "https://cdn.example.com/cover.png",
			MediaURL:        "https://cdn.example.com/track.mp3",
			WalletAddress:   buyer,
			PriceMinorUnits: int64Ptr(999),
		}).
		Return(&issuance.Result{
			ItemID:        42,
			MetadataURL:   "https://market.example.com/api/v1/metadata/42",
			TransactionID: strPtr("0xfeed"),
		}, nil).
		Times(1)

	body := `{"title":"Night Drive","artist":"Nova","coverArtUrl":"https://cdn.example.com/cover.png",` +
		`"audioFileUrl":"https://cdn.example.com/track.mp3","walletAddress":"` + buyer + `","priceCents":999}`
	w := tm.do(http.MethodPost, "/api/v1/items/mint", body)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, true, got["ok"])
	assert.Equal(t, float64(42), got["trackId"])
	assert.Equal(t, "https://market.example.com/api/v1/metadata/42", got["metadataUrl"])
}

func TestMintItem_ValidationError(t *testing.T) {
	tm := setupHandler(t)

	tm.issuance.EXPECT().Issue(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewError(domain.ErrorKindValidation, "issuance.Issue", "Missing required fields", nil)).
		Times(1)

	w := tm.do(http.MethodPost, "/api/v1/items/mint", `{"title":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decode(t, w)["error"])
}

func TestGetMetadata(t *testing.T) {
	tm := setupHandler(t)

	tm.issuance.EXPECT().Metadata(gomock.Any(), int64(42)).Return(datatypes.JSON(`{"name":"Night Drive","trackId":42}`), nil).Times(1)
	tm.issuance.EXPECT().Metadata(gomock.Any(), int64(43)).
		Return(nil, domain.NewError(domain.ErrorKindNotFound, "issuance.Metadata", "Metadata not found", domain.ErrItemNotFound)).
		Times(1)

	w := tm.do(http.MethodGet, "/api/v1/metadata/42", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Night Drive","trackId":42}`, w.Body.String())

	w = tm.do(http.MethodGet, "/api/v1/metadata/43", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = tm.do(http.MethodGet, "/api/v1/metadata/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	tm := setupHandler(t,
		rest.HealthCheck{Name: "database", Check: func(ctx context.Context) error { return nil }},
		rest.HealthCheck{Name: "redis", Check: func(ctx context.Context) error { return errors.New("connection refused") }},
	)
	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).Times(2)
	tm.clock.EXPECT().Since(now).Return(5 * time.Millisecond).Times(2)

	w := tm.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	got := decode(t, w)
	assert.Equal(t, false, got["ok"])
	checks := got["checks"].(map[string]interface{})
	assert.Equal(t, true, checks["database"].(map[string]interface{})["ok"])
	redisCheck := checks["redis"].(map[string]interface{})
	assert.Equal(t, false, redisCheck["ok"])
	assert.Equal(t, "connection refused", redisCheck["error"])
}

func TestHealthCheck_AllHealthy(t *testing.T) {
	tm := setupHandler(t, rest.HealthCheck{Name: "database", Check: func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		if !hasDeadline {
			return errors.New("missing deadline")
		}
		return nil
	}})
	tm.clock.EXPECT().Now().Return(time.Now()).Times(1)
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).Times(1)

	w := tm.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ok"])
}
