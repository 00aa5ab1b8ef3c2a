package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/domain/repository"
)

// ContactUseCase builds the WhatsApp handoff for a product. The caller
// opens the returned link in a new context; success is assumed once the
// open request is issued, nothing is awaited.
type ContactUseCase struct {
	catalog     repository.CatalogRepository
	countryCode string
}

// NewContactUseCase builds the use case. countryCode is prefixed verbatim
// to the stored number ("91" for India).
func NewContactUseCase(catalog repository.CatalogRepository, countryCode string) *ContactUseCase {
	return &ContactUseCase{catalog: catalog, countryCode: countryCode}
}

// Link finds the product and returns its deep link. Contacting an
// out-of-stock product or one without a contact number is rejected with
// ErrPrecondition before any construction happens. The stored number is
// not re-normalized; the country code is concatenated as-is. The message
// is URL-encoded and otherwise unsanitized.
func (uc *ContactUseCase) Link(ctx context.Context, productID string) (*dto.ContactLinkResponse, error) {
	products, err := uc.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID != productID {
			continue
		}
		if !p.InStock {
			return nil, fmt.Errorf("%w: product is out of stock", domain.ErrPrecondition)
		}
		if p.Phone == "" {
			return nil, fmt.Errorf("%w: product has no contact number", domain.ErrPrecondition)
		}
		message := fmt.Sprintf(
			"नमस्ते, मुझे %s (%s) चाहिए। कृपया मुझसे संपर्क करें। / Hello, I need %s. Please contact me.",
			p.HindiName, p.Name, p.Name,
		)
		return &dto.ContactLinkResponse{
			URL:      "https://wa.me/" + uc.countryCode + p.Phone + "?text=" + url.QueryEscape(message),
			Message:  message,
			Supplier: p.Supplier,
		}, nil
	}
	return nil, domain.ErrNotFound
}
