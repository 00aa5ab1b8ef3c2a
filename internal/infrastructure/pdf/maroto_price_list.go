// Package pdf renders the supplier catalog as a one-page-or-more A4 price
// list that a supplier can print or forward to vendors.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: VendorConnect + supplier phone │ date              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Name / हिंदी | Category | Price | Bulk | Stock       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: listing counts                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/vendorconnect/api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12} // the app's orange
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPriceListGenerator implements usecase.PriceListPDFGenerator using
// Maroto v2.
type MarotoPriceListGenerator struct{}

// NewMarotoPriceListGenerator builds the generator.
func NewMarotoPriceListGenerator() *MarotoPriceListGenerator { return &MarotoPriceListGenerator{} }

// GeneratePriceListPDF renders the catalog and returns the PDF bytes.
func (g *MarotoPriceListGenerator) GeneratePriceListPDF(
	_ context.Context,
	supplierPhone string,
	products []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("VendorConnect Price List", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(supplierPhone))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: brand + supplier phone (left), date (right).
func headerRow(supplierPhone string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("VendorConnect", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("मूल्य सूची / Price List — "+supplierPhone, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product / उत्पाद", 5, align.Left),
		h("Category", 2, align.Left),
		h("Price (₹)", 2, align.Right),
		h("Bulk (₹)", 2, align.Right),
		h("Stock", 1, align.Center),
	)
}

// productRow: one listing per row.
func productRow(p *entity.Product) core.Row {
	name := p.Name
	if p.HindiName != "" {
		name += " / " + p.HindiName
	}
	bulk := "—"
	if p.BulkPrice != nil {
		bulk = fmt.Sprintf("%s (min %d)", p.BulkPrice.StringFixed(0), p.MinBulkQty)
	}
	stock := "✓"
	if !p.InStock {
		stock = "✗"
	}
	return row.New(7).Add(
		col.New(5).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(2).Add(text.New(p.Price.StringFixed(0)+" "+p.Unit, props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(bulk, props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(1).Add(text.New(stock, props.Text{Size: 8, Align: align.Center, Top: 1})),
	)
}

func footerRow(products []*entity.Product) core.Row {
	inStock := 0
	for _, p := range products {
		if p.InStock {
			inStock++
		}
	}
	summary := fmt.Sprintf("%d listings, %d in stock / %d कुल उत्पाद", len(products), inStock, len(products))
	return row.New(8).Add(
		col.New(12).Add(text.New(summary, props.Text{Size: 8, Top: 2, Color: colorGray})),
	)
}
