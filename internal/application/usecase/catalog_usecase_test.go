package usecase_test

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/application/usecase"
	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/infrastructure/memory"
	"github.com/vendorconnect/api/internal/infrastructure/state"
)

// newCatalog builds the use case over an in-memory store and returns the
// bus so tests can observe change notifications.
func newCatalog(t *testing.T) (*usecase.CatalogUseCase, EventBus.Bus) {
	t.Helper()
	bus := EventBus.New()
	repo := state.NewCatalogRepository(memory.New())
	return usecase.NewCatalogUseCase(repo, bus), bus
}

func addProduct(t *testing.T, uc *usecase.CatalogUseCase, name, price string) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Add(context.Background(), dto.AddProductRequest{Name: name, Price: price})
	require.NoError(t, err)
	return out
}

func TestAdd_ThenList_GrowsByOne(t *testing.T) {
	uc, _ := newCatalog(t)
	ctx := context.Background()

	before, err := uc.List(ctx)
	require.NoError(t, err)

	out := addProduct(t, uc, "Fresh Tomatoes", "18.50")

	after, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Total+1, after.Total)

	assert.NotEmpty(t, out.ID)
	assert.True(t, decimal.RequireFromString("18.5").Equal(out.Price), "price equals the parsed numeric input")
	assert.True(t, out.InStock, "stock defaults to true on creation")
	assert.Equal(t, "per kg", out.Unit, "unit falls back to the default")
	assert.Equal(t, "vegetables", out.Category, "category falls back to the default")
}

func TestAdd_AssignsUniqueIDs(t *testing.T) {
	uc, _ := newCatalog(t)

	a := addProduct(t, uc, "Tomatoes", "18")
	b := addProduct(t, uc, "Onions", "22")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAdd_InvalidDraft_LeavesCatalogUnchanged(t *testing.T) {
	uc, _ := newCatalog(t)
	ctx := context.Background()

	cases := []dto.AddProductRequest{
		{Name: "", Price: "18"},                                 // missing name
		{Name: "Tomatoes", Price: ""},                           // missing price
		{Name: "Tomatoes", Price: "abc"},                        // price does not parse
		{Name: "Tomatoes", Price: "-5"},                         // negative price
		{Name: "Tomatoes", Price: "18", Category: "unknown"},    // outside the closed set
		{Name: "Tomatoes", Price: "18", Unit: "per truck"},      // outside the closed set
		{Name: "Tomatoes", Price: "18", ExpiryDate: "tomorrow"}, // bad date
	}
	for _, in := range cases {
		_, err := uc.Add(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation, "draft %+v must be rejected", in)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, list.Total, "no validation failure may mutate the catalog")
}

func TestRemove_IsIdempotent(t *testing.T) {
	uc, _ := newCatalog(t)
	ctx := context.Background()
	p := addProduct(t, uc, "Tomatoes", "18")

	require.NoError(t, uc.Remove(ctx, p.ID))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	for _, item := range list.Items {
		assert.NotEqual(t, p.ID, item.ID, "removed id must never appear again")
	}

	// Second removal of the same id is a no-op, not an error.
	assert.NoError(t, uc.Remove(ctx, p.ID))
	assert.NoError(t, uc.Remove(ctx, "never-existed"))
}

func TestToggleStock_FlipsFlag(t *testing.T) {
	uc, _ := newCatalog(t)
	ctx := context.Background()
	p := addProduct(t, uc, "Tomatoes", "18")

	out, err := uc.ToggleStock(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.InStock)

	out, err = uc.ToggleStock(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, out.InStock)

	// Unknown id: no-op, not an error.
	out, err = uc.ToggleStock(ctx, "never-existed")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	uc, _ := newCatalog(t)
	ctx := context.Background()

	names := []string{"Tomatoes", "Onions", "Chillies", "Oil"}
	for _, n := range names {
		addProduct(t, uc, n, "10")
	}
	// Removing from the middle keeps the relative order of the rest.
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.NoError(t, uc.Remove(ctx, list.Items[1].ID))

	list, err = uc.List(ctx)
	require.NoError(t, err)
	got := make([]string, 0, list.Total)
	for _, item := range list.Items {
		got = append(got, item.Name)
	}
	assert.Equal(t, []string{"Tomatoes", "Chillies", "Oil"}, got)
}

func TestStats_CountsStockStates(t *testing.T) {
	uc, _ := newCatalog(t)
	ctx := context.Background()

	a := addProduct(t, uc, "Tomatoes", "18")
	addProduct(t, uc, "Onions", "22")
	_, err := uc.ToggleStock(ctx, a.ID)
	require.NoError(t, err)

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.InStock)
	assert.Equal(t, 1, stats.OutOfStock)
}

func TestMutations_NotifyObservers(t *testing.T) {
	uc, bus := newCatalog(t)
	ctx := context.Background()

	type event struct{ action, id string }
	var events []event
	require.NoError(t, bus.Subscribe(usecase.TopicCatalogChanged, func(action, id string) {
		events = append(events, event{action, id})
	}))

	p := addProduct(t, uc, "Tomatoes", "18")
	_, err := uc.ToggleStock(ctx, p.ID)
	require.NoError(t, err)
	require.NoError(t, uc.Remove(ctx, p.ID))
	// A no-op mutation publishes nothing.
	require.NoError(t, uc.Remove(ctx, p.ID))

	assert.Equal(t, []event{
		{"add", p.ID},
		{"toggle_stock", p.ID},
		{"remove", p.ID},
	}, events)
}
