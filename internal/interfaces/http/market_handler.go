package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/application/usecase"
)

// MarketHandler serves the vendor dashboard: browse/search, business
// profile, recommendations and the WhatsApp handoff.
type MarketHandler struct {
	market  *usecase.MarketUseCase
	contact *usecase.ContactUseCase
}

// NewMarketHandler builds the handler.
func NewMarketHandler(market *usecase.MarketUseCase, contact *usecase.ContactUseCase) *MarketHandler {
	return &MarketHandler{market: market, contact: contact}
}

// Browse godoc
// @Summary      Search the marketplace
// @Tags         market
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "substring of the English or Hindi name; empty returns all"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/market/products [get]
func (h *MarketHandler) Browse(c *fiber.Ctx) error {
	out, err := h.market.Filter(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Recommendations godoc
// @Summary      In-stock products suited to the vendor's business type
// @Tags         market
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/market/recommendations [get]
func (h *MarketHandler) Recommendations(c *fiber.Ctx) error {
	out, err := h.market.Recommendations(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Contact godoc
// @Summary      Build the WhatsApp deep link for a product
// @Tags         market
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "product id"
// @Success      200  {object}  dto.ContactLinkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/market/products/{id}/contact [post]
func (h *MarketHandler) Contact(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.contact.Link(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetProfile godoc
// @Summary      Read the business profile
// @Tags         market
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Router       /api/market/profile [get]
func (h *MarketHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.market.GetProfile(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetProfile godoc
// @Summary      Declare the business type
// @Tags         market
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetProfileRequest  true  "one of chaat|dosa|parathas|tea|juice|other"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/market/profile [put]
func (h *MarketHandler) SetProfile(c *fiber.Ctx) error {
	var in dto.SetProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.market.SetProfile(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
