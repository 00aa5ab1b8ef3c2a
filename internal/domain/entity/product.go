package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one raw-material listing offered by the supplier.
// The shape is the richer marketplace variant: supplier contact and bulk
// pricing live on the product itself because the demo models a single
// supplier-owned catalog, not a multi-supplier partition.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	HindiName   string          `json:"hindiName"`
	Price       decimal.Decimal `json:"price"` // per-unit price in INR, non-negative
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	InStock     bool            `json:"inStock"`

	// Freshness window. Optional; no ordering is enforced between the two
	// and expired products are not hidden automatically.
	ManufacturingDate *time.Time `json:"manufacturingDate,omitempty"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty"`

	// Supplier card shown on the vendor side.
	Supplier   string  `json:"supplier,omitempty"`
	Location   string  `json:"location,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Phone      string  `json:"phone,omitempty"` // 10-digit contact number, no country code
	IsVerified bool    `json:"isVerified,omitempty"`
	Freshness  string  `json:"freshness,omitempty"`

	// Bulk tier: reduced per-unit price at or above MinBulkQty.
	BulkPrice  *decimal.Decimal `json:"bulkPrice,omitempty"`
	MinBulkQty int              `json:"minBulkQty,omitempty"`

	// Business types this product suits, e.g. ["chaat", "dosa"].
	BestFor []string `json:"bestFor,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Categories is the closed set of product category tags.
var Categories = []string{"vegetables", "spices", "oil", "flour", "dairy", "packaged"}

// Units is the closed set of unit-of-sale labels.
var Units = []string{"per kg", "per piece", "per liter", "per packet", "per bundle"}

const (
	DefaultCategory = "vegetables"
	DefaultUnit     = "per kg"
)

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidUnit reports whether u belongs to the closed unit set.
func ValidUnit(u string) bool {
	for _, v := range Units {
		if v == u {
			return true
		}
	}
	return false
}

// SuitsBusiness reports whether the product is tagged for the given
// business type.
func (p *Product) SuitsBusiness(businessType string) bool {
	for _, b := range p.BestFor {
		if b == businessType {
			return true
		}
	}
	return false
}
