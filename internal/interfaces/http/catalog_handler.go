package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/application/usecase"
)

// CatalogHandler serves the supplier dashboard: catalog CRUD, counters,
// price-list export.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
	export  *usecase.ExportUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase, export *usecase.ExportUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, export: export}
}

// List godoc
// @Summary      List the catalog (insertion order)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.catalog.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Catalog counters (total / in stock / out of stock)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogStatsResponse
// @Router       /api/products/stats [get]
func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	out, err := h.catalog.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Add a listing
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductRequest  true  "listing draft; name and price required"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) Add(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.catalog.Add(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Delete a listing (idempotent)
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "product id"
// @Success      204
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) Remove(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.catalog.Remove(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleStock godoc
// @Summary      Flip a listing's stock flag
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "product id"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [patch]
func (h *CatalogHandler) ToggleStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.catalog.ToggleStock(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Download the catalog as a PDF price list
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/export [get]
func (h *CatalogHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.export.PriceListPDF(c.Context(), GetPhone(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
