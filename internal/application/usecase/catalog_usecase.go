package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
)

// TopicCatalogChanged is published after every successful catalog mutation.
// Payload: the action ("add", "remove", "toggle_stock") and the product id.
const TopicCatalogChanged = "catalog:changed"

const dateLayout = "2006-01-02"

// CatalogUseCase owns the supplier catalog: list, add, remove, stock
// toggle. Every mutation loads the current list, applies the change and
// replaces the whole persisted list in one write, then notifies observers
// on the bus. Validation failures leave the catalog untouched.
type CatalogUseCase struct {
	repo repository.CatalogRepository
	bus  EventBus.Bus
}

// NewCatalogUseCase builds the use case. bus may not be nil; pass a fresh
// EventBus.New() when nobody subscribes.
func NewCatalogUseCase(repo repository.CatalogRepository, bus EventBus.Bus) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, bus: bus}
}

// List returns the full catalog in insertion order.
func (uc *CatalogUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(products), nil
}

// Stats returns the dashboard counters.
func (uc *CatalogUseCase) Stats(ctx context.Context) (*dto.CatalogStatsResponse, error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	stats := &dto.CatalogStatsResponse{Total: len(products)}
	for _, p := range products {
		if p.InStock {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
	}
	return stats, nil
}

// Add validates the draft, assigns a fresh id, defaults inStock=true,
// appends and persists. Name and a parseable non-negative price are
// required; category and unit fall back to their defaults when empty and
// must belong to the closed sets otherwise.
func (uc *CatalogUseCase) Add(ctx context.Context, in dto.AddProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: price %q does not parse as a number", domain.ErrValidation, in.Price)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}

	category := in.Category
	if category == "" {
		category = entity.DefaultCategory
	}
	if !entity.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}
	unit := in.Unit
	if unit == "" {
		unit = entity.DefaultUnit
	}
	if !entity.ValidUnit(unit) {
		return nil, fmt.Errorf("%w: unknown unit %q", domain.ErrValidation, in.Unit)
	}

	mfg, err := parseDate(in.ManufacturingDate)
	if err != nil {
		return nil, err
	}
	exp, err := parseDate(in.ExpiryDate)
	if err != nil {
		return nil, err
	}

	var bulk *decimal.Decimal
	if in.BulkPrice != "" {
		b, err := decimal.NewFromString(in.BulkPrice)
		if err != nil || b.IsNegative() {
			return nil, fmt.Errorf("%w: bulk price %q does not parse as a non-negative number", domain.ErrValidation, in.BulkPrice)
		}
		bulk = &b
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		HindiName:         in.HindiName,
		Price:             price,
		Unit:              unit,
		Description:       in.Description,
		Category:          category,
		InStock:           true,
		ManufacturingDate: mfg,
		ExpiryDate:        exp,
		Supplier:          in.Supplier,
		Location:          in.Location,
		Rating:            in.Rating,
		Phone:             in.Phone,
		IsVerified:        in.IsVerified,
		Freshness:         in.Freshness,
		BulkPrice:         bulk,
		MinBulkQty:        in.MinBulkQty,
		BestFor:           in.BestFor,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	products = append(products, product)
	if err := uc.repo.Replace(ctx, products); err != nil {
		return nil, err
	}
	uc.bus.Publish(TopicCatalogChanged, "add", product.ID)
	return toProductResponse(product), nil
}

// Remove deletes the matching entry. Absent ids are a no-op, not an error;
// the second Remove with the same id does nothing.
func (uc *CatalogUseCase) Remove(ctx context.Context, id string) error {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	removed := false
	for _, p := range products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}
	if err := uc.repo.Replace(ctx, kept); err != nil {
		return err
	}
	uc.bus.Publish(TopicCatalogChanged, "remove", id)
	return nil
}

// ToggleStock flips the stock flag of the matching entry; no-op if absent.
func (uc *CatalogUseCase) ToggleStock(ctx context.Context, id string) (*dto.ProductResponse, error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	var toggled *entity.Product
	for _, p := range products {
		if p.ID == id {
			p.InStock = !p.InStock
			p.UpdatedAt = time.Now()
			toggled = p
			break
		}
	}
	if toggled == nil {
		return nil, nil
	}
	if err := uc.repo.Replace(ctx, products); err != nil {
		return nil, err
	}
	uc.bus.Publish(TopicCatalogChanged, "toggle_stock", id)
	return toProductResponse(toggled), nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrValidation, s)
	}
	return &t, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		HindiName:         p.HindiName,
		Price:             p.Price,
		Unit:              p.Unit,
		Description:       p.Description,
		Category:          p.Category,
		InStock:           p.InStock,
		ManufacturingDate: p.ManufacturingDate,
		ExpiryDate:        p.ExpiryDate,
		Supplier:          p.Supplier,
		Location:          p.Location,
		Rating:            p.Rating,
		Phone:             p.Phone,
		IsVerified:        p.IsVerified,
		Freshness:         p.Freshness,
		BulkPrice:         p.BulkPrice,
		MinBulkQty:        p.MinBulkQty,
		BestFor:           p.BestFor,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductListResponse(products []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}
