package usecase_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/application/usecase"
	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/infrastructure/memory"
	"github.com/vendorconnect/api/internal/infrastructure/state"
)

func newContact(t *testing.T) (*usecase.ContactUseCase, *usecase.CatalogUseCase) {
	t.Helper()
	repo := state.NewCatalogRepository(memory.New())
	return usecase.NewContactUseCase(repo, "91"),
		usecase.NewCatalogUseCase(repo, EventBus.New())
}

func TestLink_BuildsWhatsAppDeepLink(t *testing.T) {
	contact, catalog := newContact(t)
	ctx := context.Background()

	p, err := catalog.Add(ctx, dto.AddProductRequest{
		Name: "Fresh Tomatoes", HindiName: "ताज़े टमाटर",
		Price: "18", Phone: "9876543210", Supplier: "किसान डायरेक्ट फार्म",
	})
	require.NoError(t, err)

	out, err := contact.Link(ctx, p.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.URL, "https://wa.me/919876543210?text="),
		"country code is prefixed to the stored number")
	assert.Equal(t, "किसान डायरेक्ट फार्म", out.Supplier)

	// The encoded text query decodes back to the bilingual message.
	u, err := url.Parse(out.URL)
	require.NoError(t, err)
	assert.Equal(t, out.Message, u.Query().Get("text"))
	assert.Contains(t, out.Message, "ताज़े टमाटर")
	assert.Contains(t, out.Message, "Hello, I need Fresh Tomatoes.")
}

func TestLink_OutOfStock_Rejected(t *testing.T) {
	contact, catalog := newContact(t)
	ctx := context.Background()

	p, err := catalog.Add(ctx, dto.AddProductRequest{
		Name: "Onions", Price: "22", Phone: "9876543211",
	})
	require.NoError(t, err)
	_, err = catalog.ToggleStock(ctx, p.ID)
	require.NoError(t, err)

	_, err = contact.Link(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestLink_NoContactNumber_Rejected(t *testing.T) {
	contact, catalog := newContact(t)
	ctx := context.Background()

	p, err := catalog.Add(ctx, dto.AddProductRequest{Name: "Onions", Price: "22"})
	require.NoError(t, err)

	_, err = contact.Link(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestLink_UnknownProduct_NotFound(t *testing.T) {
	contact, _ := newContact(t)

	_, err := contact.Link(context.Background(), "never-existed")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
