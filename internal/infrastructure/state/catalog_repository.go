package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
)

// CatalogRepository stores the whole product list as one JSON value under
// the supplierProducts key, on whatever Store backend is configured.
type CatalogRepository struct {
	store repository.Store
}

// NewCatalogRepository builds the repository over a Store.
func NewCatalogRepository(store repository.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Load decodes the persisted catalog. A missing key is an empty catalog,
// not an error.
func (r *CatalogRepository) Load(ctx context.Context) ([]*entity.Product, error) {
	raw, ok, err := r.store.Get(ctx, repository.KeyProducts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*entity.Product{}, nil
	}
	var products []*entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrPersistence, repository.KeyProducts, err)
	}
	return products, nil
}

// Replace serializes and writes the full list in a single Set.
func (r *CatalogRepository) Replace(ctx context.Context, products []*entity.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrPersistence, repository.KeyProducts, err)
	}
	return r.store.Set(ctx, repository.KeyProducts, raw)
}
