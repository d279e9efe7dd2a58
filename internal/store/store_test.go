package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func strPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}

// buildTestItem creates a listed item input priced at 500 minor units
func buildTestItem(title string) CreateItemInput {
	return CreateItemInput{
		Title:           title,
		Artist:          "Test Artist",
		Album:           strPtr("Test Album"),
		CoverArtURL:     strPtr("https://cdn.example.com/cover.png"),
		MediaURL:        strPtr("https://cdn.example.com/audio.mp3"),
		PriceMinorUnits: int64Ptr(500),
		Status:          schema.ItemStatusListed,
		MetadataURL:     strPtr("https://meta.example.com/" + title + ".json"),
	}
}

func mustCreateProfile(t *testing.T, s Store, id string, wallet *string) *schema.UserProfile {
	t.Helper()
	profile, err := s.CreateUserProfile(context.Background(), CreateUserProfileInput{
		ID:            id,
		Email:         id + "@example.com",
		WalletAddress: wallet,
	})
	require.NoError(t, err)
	return profile
}

// RunStoreTests runs the store test cases against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s Store)
	}{
		{"AuthIdentity", testAuthIdentity},
		{"UserProfile", testUserProfile},
		{"BindWalletViaProcedure", testBindWalletViaProcedure},
		{"UpdateProfileWallet", testUpdateProfileWallet},
		{"EnsureWalletRecord", testEnsureWalletRecord},
		{"ItemLookups", testItemLookups},
		{"ItemUpdates", testItemUpdates},
		{"RecordOwnership", testRecordOwnership},
		{"ReassociateOrphans", testReassociateOrphans},
		{"ListOrphanBindings", testListOrphanBindings},
		{"CreatePaymentTransaction", testCreatePaymentTransaction},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, s)
		})
	}
}

func testAuthIdentity(t *testing.T, s Store) {
	ctx := context.Background()

	identity, err := s.GetAuthIdentity(ctx, "user-a")
	require.NoError(t, err)
	assert.Nil(t, identity)

	created, err := s.CreateAuthIdentity(ctx, CreateAuthIdentityInput{
		ID:            "user-a",
		Email:         "a@example.com",
		EmailVerified: true,
		Metadata:      datatypes.JSON(`{"provider":"crossmint"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "user-a", created.ID)

	identity, err = s.GetAuthIdentity(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.True(t, identity.EmailVerified)
	assert.JSONEq(t, `{"provider":"crossmint"}`, string(identity.Metadata))
}

func testUserProfile(t *testing.T, s Store) {
	ctx := context.Background()

	profile, err := s.GetUserProfile(ctx, "user-b")
	require.NoError(t, err)
	assert.Nil(t, profile)

	mustCreateProfile(t, s, "user-b", strPtr("0xabc"))

	profile, err = s.GetUserProfile(ctx, "user-b")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "user-b@example.com", profile.Email)
	assert.Equal(t, "0xabc", *profile.WalletAddress)
	assert.Nil(t, profile.WalletProviderID)

	_, err = s.CreateUserProfile(ctx, CreateUserProfileInput{ID: "user-b", Email: "dup@example.com"})
	assert.Error(t, err)
}

func testBindWalletViaProcedure(t *testing.T, s Store) {
	ctx := context.Background()
	mustCreateProfile(t, s, "user-c", nil)

	err := s.BindWalletViaProcedure(ctx, "user-c", "0xnew", strPtr("wallet-1"))
	require.NoError(t, err)

	profile, err := s.GetUserProfile(ctx, "user-c")
	require.NoError(t, err)
	assert.Equal(t, "0xnew", *profile.WalletAddress)
	assert.Equal(t, "wallet-1", *profile.WalletProviderID)

	// A nil provider id keeps the stored one
	require.NoError(t, s.BindWalletViaProcedure(ctx, "user-c", "0xnewer", nil))
	profile, err = s.GetUserProfile(ctx, "user-c")
	require.NoError(t, err)
	assert.Equal(t, "0xnewer", *profile.WalletAddress)
	assert.Equal(t, "wallet-1", *profile.WalletProviderID)

	// Unknown profile raises, and the enclosing transaction stays usable
	err = s.BindWalletViaProcedure(ctx, "missing-user", "0xabc", nil)
	assert.Error(t, err)
	_, err = s.GetUserProfile(ctx, "user-c")
	assert.NoError(t, err)
}

func testUpdateProfileWallet(t *testing.T, s Store) {
	ctx := context.Background()
	mustCreateProfile(t, s, "user-d", nil)

	affected, err := s.UpdateProfileWallet(ctx, "user-d", "0xdef", strPtr("wallet-2"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	profile, err := s.GetUserProfile(ctx, "user-d")
	require.NoError(t, err)
	assert.Equal(t, "0xdef", *profile.WalletAddress)
	assert.Equal(t, "wallet-2", *profile.WalletProviderID)

	affected, err = s.UpdateProfileWallet(ctx, "missing-user", "0xdef", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func testEnsureWalletRecord(t *testing.T, s Store) {
	ctx := context.Background()
	input := EnsureWalletRecordInput{
		UserID:        "user-e",
		WalletAddress: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		IsPrimary:     true,
		WalletKind:    "evm",
	}

	created, err := s.EnsureWalletRecord(ctx, input)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.EnsureWalletRecord(ctx, input)
	require.NoError(t, err)
	assert.False(t, created)
}

func testItemLookups(t *testing.T, s Store) {
	ctx := context.Background()

	parent, err := s.CreateItem(ctx, buildTestItem("Midnight Drive"))
	require.NoError(t, err)
	assert.Equal(t, schema.ItemStatusListed, parent.Status)

	clone, err := s.CreateItem(ctx, CreateItemInput{
		Title:              parent.Title,
		Artist:             parent.Artist,
		Status:             schema.ItemStatusMinted,
		OwnerWalletAddress: strPtr("0xbuyer"),
		ParentItemID:       &parent.ID,
	})
	require.NoError(t, err)

	item, err := s.GetItemByID(ctx, parent.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Midnight Drive", item.Title)
	assert.Equal(t, int64(500), *item.PriceMinorUnits)

	item, err = s.GetItemByTitle(ctx, "midnight DRIVE")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, parent.ID, item.ID, "earliest matching title wins")

	item, err = s.GetItemByTitle(ctx, "Midnight")
	require.NoError(t, err)
	assert.Nil(t, item, "title match is exact")

	item, err = s.GetItemByParentID(ctx, parent.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, clone.ID, item.ID)
	assert.Nil(t, item.PriceMinorUnits)

	item, err = s.GetItemByID(ctx, 99999999)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func testItemUpdates(t *testing.T, s Store) {
	ctx := context.Background()

	item, err := s.CreateItem(ctx, CreateItemInput{
		Title:  "Pending Item",
		Artist: "Creator",
		Status: schema.ItemStatusPending,
	})
	require.NoError(t, err)

	metadata := datatypes.JSON(`{"name":"Pending Item"}`)
	require.NoError(t, s.SetItemMetadata(ctx, item.ID, "https://market.example.com/api/v1/metadata/1", metadata))

	require.NoError(t, s.UpdateItemMintResult(ctx, item.ID, UpdateItemMintResultInput{
		Status:             schema.ItemStatusMinted,
		OwnerWalletAddress: strPtr("0xcreator"),
		TransactionID:      strPtr("tx-1"),
	}))

	require.NoError(t, s.IncrementMintedCount(ctx, item.ID))
	require.NoError(t, s.IncrementMintedCount(ctx, item.ID))

	updated, err := s.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.ItemStatusMinted, updated.Status)
	assert.Equal(t, "0xcreator", *updated.OwnerWalletAddress)
	assert.Equal(t, "tx-1", *updated.TransactionID)
	assert.Equal(t, "https://market.example.com/api/v1/metadata/1", *updated.MetadataURL)
	assert.JSONEq(t, `{"name":"Pending Item"}`, string(updated.Metadata))
	assert.Equal(t, 2, updated.MintedCount)

	err = s.UpdateItemMintResult(ctx, 99999999, UpdateItemMintResultInput{Status: schema.ItemStatusError})
	assert.Error(t, err)
}

func testRecordOwnership(t *testing.T, s Store) {
	ctx := context.Background()

	item, err := s.CreateItem(ctx, buildTestItem("Edition Test"))
	require.NoError(t, err)
	mustCreateProfile(t, s, "user-f", nil)

	first, err := s.RecordOwnership(ctx, RecordOwnershipInput{
		ItemID:        item.ID,
		WalletAddress: "0xbuyer1",
		UserID:        strPtr("user-f"),
		TransactionID: "tx-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Record.EditionNumber)
	assert.True(t, first.ProfileLinked)
	assert.Equal(t, "user-f", *first.Record.UserID)

	second, err := s.RecordOwnership(ctx, RecordOwnershipInput{
		ItemID:        item.ID,
		WalletAddress: "0xbuyer2",
		UserID:        strPtr("ghost-user"),
		TransactionID: "tx-2",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Record.EditionNumber)
	assert.False(t, second.ProfileLinked)
	assert.Nil(t, second.Record.UserID, "unknown profiles produce orphaned records")

	count, err := s.CountOwnershipRecords(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = s.RecordOwnership(ctx, RecordOwnershipInput{
		ItemID:        99999999,
		WalletAddress: "0xbuyer3",
		TransactionID: "tx-3",
	})
	assert.Error(t, err)
}

func testReassociateOrphans(t *testing.T, s Store) {
	ctx := context.Background()

	mustCreateProfile(t, s, "user-g", strPtr("0xorphan"))
	for i := 0; i < 3; i++ {
		item, err := s.CreateItem(ctx, buildTestItem("Orphan Item"))
		require.NoError(t, err)
		_, err = s.RecordOwnership(ctx, RecordOwnershipInput{
			ItemID:        item.ID,
			WalletAddress: "0xorphan",
			TransactionID: "tx-orphan",
		})
		require.NoError(t, err)
	}

	affected, err := s.ReassociateOrphans(ctx, "user-g", "0xorphan")
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	affected, err = s.ReassociateOrphans(ctx, "user-g", "0xorphan")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func testListOrphanBindings(t *testing.T, s Store) {
	ctx := context.Background()

	mustCreateProfile(t, s, "user-h", strPtr("0xlonely"))
	mustCreateProfile(t, s, "user-i", strPtr("0xclean"))

	item, err := s.CreateItem(ctx, buildTestItem("Binding Item"))
	require.NoError(t, err)
	for _, wallet := range []string{"0xlonely", "0xlonely", "0xunknown"} {
		_, err := s.RecordOwnership(ctx, RecordOwnershipInput{
			ItemID:        item.ID,
			WalletAddress: wallet,
			TransactionID: "tx",
		})
		require.NoError(t, err)
	}

	bindings, err := s.ListOrphanBindings(ctx, 10)
	require.NoError(t, err)

	var found []OrphanBinding
	for _, b := range bindings {
		if b.UserID == "user-h" || b.UserID == "user-i" {
			found = append(found, b)
		}
	}
	require.Len(t, found, 1)
	assert.Equal(t, OrphanBinding{UserID: "user-h", WalletAddress: "0xlonely"}, found[0])
}

func testCreatePaymentTransaction(t *testing.T, s Store) {
	ctx := context.Background()

	payment, err := s.CreatePaymentTransaction(ctx, CreatePaymentTransactionInput{
		BuyerWallet:   "0xbuyer",
		SellerWallet:  "0xseller",
		Amount:        decimal.RequireFromString("4.99"),
		Asset:         "USDXM",
		ItemID:        7,
		Status:        schema.PaymentStatusCompleted,
		TransactionID: strPtr("pay-1"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID.String())
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("4.99")))
}

func testPing(t *testing.T, s Store) {
	assert.NoError(t, s.Ping(context.Background()))
}
