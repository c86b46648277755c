package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/pkg/kvstore"
	"wander/pkg/utils"
)

func newTestVault(t *testing.T) (TripVaultServiceInterface, kvstore.Store) {
	t.Helper()
	cipher, err := utils.NewVaultCipher("test-passphrase")
	require.NoError(t, err)

	store := kvstore.NewMemoryStore()
	return NewTripVaultService(store, cipher, zap.NewNop()), store
}

func sampleQuery(destination string) request_models.PlanRequest {
	return request_models.PlanRequest{
		Destination: destination,
		Duration:    "2 Days",
		Budget:      3000,
	}
}

func samplePlan() response_models.TripPlanResponse {
	return response_models.TripPlanResponse{
		TripSummary:  "A short coastal break.",
		BudgetStatus: response_models.BudgetOK,
		MLComparison: "Within budget.",
		CostBreakdown: response_models.CostBreakdown{
			Transport: "900", Stay: "1200", Food: "600", Activities: "300",
		},
		Itinerary: []response_models.ItineraryItem{
			{Time: "08:00", Activity: "Beach walk", CostSavingTip: "Free before 9am."},
		},
		LocalProTip: "Rent a cycle.",
	}
}

func TestTripVault_SaveAndList(t *testing.T) {
	vault, _ := newTestVault(t)
	ctx := context.Background()

	saved, err := vault.SaveTrip(ctx, sampleQuery("Pondicherry"), samplePlan())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotZero(t, saved.CreatedAt)

	trips, err := vault.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, saved.ID, trips[0].ID)
	assert.Equal(t, "Pondicherry", trips[0].Query.Destination)
	assert.Equal(t, "A short coastal break.", trips[0].Plan.TripSummary)
}

func TestTripVault_EmptyVaultListsNothing(t *testing.T) {
	vault, _ := newTestVault(t)

	trips, err := vault.ListTrips(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestTripVault_NewestFirst(t *testing.T) {
	vault, _ := newTestVault(t)
	ctx := context.Background()

	_, err := vault.SaveTrip(ctx, sampleQuery("Pondicherry"), samplePlan())
	require.NoError(t, err)
	second, err := vault.SaveTrip(ctx, sampleQuery("Goa"), samplePlan())
	require.NoError(t, err)

	trips, err := vault.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, second.ID, trips[0].ID)
	assert.Equal(t, "Goa", trips[0].Query.Destination)
}

func TestTripVault_StoredBlobIsEncrypted(t *testing.T) {
	vault, store := newTestVault(t)
	ctx := context.Background()

	_, err := vault.SaveTrip(ctx, sampleQuery("Pondicherry"), samplePlan())
	require.NoError(t, err)

	raw, err := store.Get(ctx, "saved_trips")
	require.NoError(t, err)
	assert.NotContains(t, raw, "Pondicherry")

	var anything []response_models.SavedTrip
	assert.Error(t, json.Unmarshal([]byte(raw), &anything))
}

func TestTripVault_ReadsLegacyPlaintext(t *testing.T) {
	vault, store := newTestVault(t)
	ctx := context.Background()

	legacy := []response_models.SavedTrip{
		{ID: "legacy-id", CreatedAt: 42, Query: sampleQuery("Ooty"), Plan: samplePlan()},
	}
	payload, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "saved_trips", string(payload)))

	trips, err := vault.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "legacy-id", trips[0].ID)
}

func TestTripVault_UnreadableBlobCountsAsEmpty(t *testing.T) {
	vault, store := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "saved_trips", "garbage that is neither encrypted nor json"))

	trips, err := vault.ListTrips(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestTripVault_DeleteTrip(t *testing.T) {
	vault, _ := newTestVault(t)
	ctx := context.Background()

	first, err := vault.SaveTrip(ctx, sampleQuery("Pondicherry"), samplePlan())
	require.NoError(t, err)
	second, err := vault.SaveTrip(ctx, sampleQuery("Goa"), samplePlan())
	require.NoError(t, err)

	remaining, err := vault.DeleteTrip(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)

	trips, err := vault.ListTrips(ctx)
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestTripVault_DeleteUnknownTrip(t *testing.T) {
	vault, _ := newTestVault(t)

	_, err := vault.DeleteTrip(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestTripVault_CurrentUserRoundTrip(t *testing.T) {
	vault, store := newTestVault(t)
	ctx := context.Background()

	user := response_models.CurrentUser{
		ID:      "user-1",
		Name:    "Asha",
		Email:   "asha@example.com",
		LoginAt: 1700000000000,
	}
	require.NoError(t, vault.SetCurrentUser(ctx, user))

	// The user record is plaintext on purpose.
	raw, err := store.Get(ctx, "current_user")
	require.NoError(t, err)
	assert.Contains(t, raw, "asha@example.com")

	got, err := vault.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, *got)

	require.NoError(t, vault.ClearCurrentUser(ctx))
	_, err = vault.GetCurrentUser(ctx)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
