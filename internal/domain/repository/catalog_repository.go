package repository

import (
	"context"

	"github.com/vendorconnect/api/internal/domain/entity"
)

// CatalogRepository persists the supplier-owned product list as one unit.
// Every mutation is a whole-list replace: a crash mid-write loses the
// pending mutation but can never leave two conflicting partial lists.
type CatalogRepository interface {
	// Load returns the catalog in insertion order; empty slice when nothing
	// has been persisted yet.
	Load(ctx context.Context) ([]*entity.Product, error)
	// Replace overwrites the persisted catalog with the given list.
	Replace(ctx context.Context, products []*entity.Product) error
}
