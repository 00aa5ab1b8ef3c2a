package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
)

// PriceListPDFGenerator renders the supplier catalog as a PDF price list.
// Implemented in infrastructure/pdf; the interface keeps maroto out of the
// application layer.
type PriceListPDFGenerator interface {
	GeneratePriceListPDF(ctx context.Context, supplierPhone string, products []*entity.Product) ([]byte, error)
}

// ExportUseCase produces a downloadable price list of the catalog.
type ExportUseCase struct {
	catalog   repository.CatalogRepository
	generator PriceListPDFGenerator
}

// NewExportUseCase builds the use case.
func NewExportUseCase(catalog repository.CatalogRepository, generator PriceListPDFGenerator) *ExportUseCase {
	return &ExportUseCase{catalog: catalog, generator: generator}
}

// PriceListPDF renders the current catalog. An empty catalog has nothing
// to export and is rejected with ErrPrecondition.
//
// Returns (pdfBytes, filename, nil) on success.
func (uc *ExportUseCase) PriceListPDF(ctx context.Context, supplierPhone string) ([]byte, string, error) {
	products, err := uc.catalog.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(products) == 0 {
		return nil, "", fmt.Errorf("%w: catalog is empty, nothing to export", domain.ErrPrecondition)
	}
	pdfBytes, err := uc.generator.GeneratePriceListPDF(ctx, supplierPhone, products)
	if err != nil {
		return nil, "", fmt.Errorf("price list: generation failed: %w", err)
	}
	filename := fmt.Sprintf("price_list_%s.pdf", time.Now().Format("20060102"))
	return pdfBytes, filename, nil
}
