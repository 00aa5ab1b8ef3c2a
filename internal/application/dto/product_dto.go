package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddProductRequest input to create a listing. Price arrives as a string
// and must parse as a non-negative number, matching the form field it
// replaces. Dates use the 2006-01-02 layout.
type AddProductRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	HindiName         string `json:"hindiName"`
	Price             string `json:"price" validate:"required"`
	Unit              string `json:"unit"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	ManufacturingDate string `json:"manufacturingDate"`
	ExpiryDate        string `json:"expiryDate"`

	// Optional supplier card and bulk tier.
	Supplier   string  `json:"supplier"`
	Location   string  `json:"location"`
	Rating     float64 `json:"rating"`
	Phone      string  `json:"phone"`
	IsVerified bool    `json:"isVerified"`
	Freshness  string  `json:"freshness"`
	BulkPrice  string  `json:"bulkPrice"`
	MinBulkQty int     `json:"minBulkQty"`

	BestFor []string `json:"bestFor"`
}

// ProductResponse one listing as returned to either dashboard.
type ProductResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	HindiName         string           `json:"hindiName"`
	Price             decimal.Decimal  `json:"price"`
	Unit              string           `json:"unit"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	InStock           bool             `json:"inStock"`
	ManufacturingDate *time.Time       `json:"manufacturingDate,omitempty"`
	ExpiryDate        *time.Time       `json:"expiryDate,omitempty"`
	Supplier          string           `json:"supplier,omitempty"`
	Location          string           `json:"location,omitempty"`
	Rating            float64          `json:"rating,omitempty"`
	Phone             string           `json:"phone,omitempty"`
	IsVerified        bool             `json:"isVerified,omitempty"`
	Freshness         string           `json:"freshness,omitempty"`
	BulkPrice         *decimal.Decimal `json:"bulkPrice,omitempty"`
	MinBulkQty        int              `json:"minBulkQty,omitempty"`
	BestFor           []string         `json:"bestFor,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// ProductListResponse a catalog slice, insertion order preserved.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CatalogStatsResponse the supplier dashboard counters.
type CatalogStatsResponse struct {
	Total      int `json:"total"`
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}
