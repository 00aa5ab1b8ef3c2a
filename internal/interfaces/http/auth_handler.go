package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vendorconnect/api/internal/application/auth"
	"github.com/vendorconnect/api/internal/application/dto"
)

// AuthHandler drives the mock OTP login flow.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SendCode godoc
// @Summary      Request a verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendCodeRequest  true  "phone (10 digits), role (vendor|supplier)"
// @Success      200   {object}  dto.SendCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/otp [post]
func (h *AuthHandler) SendCode(c *fiber.Ctx) error {
	var in dto.SendCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SendCode(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VerifyCode godoc
// @Summary      Submit the verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyCodeRequest  true  "the 6-digit code"
// @Success      200   {object}  dto.VerifyCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/verify [post]
func (h *AuthHandler) VerifyCode(c *fiber.Ctx) error {
	var in dto.VerifyCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.VerifyCode(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeNumber godoc
// @Summary      Discard the pending code and start over
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/change-number [post]
func (h *AuthHandler) ChangeNumber(c *fiber.Ctx) error {
	h.uc.ChangeNumber()
	return c.SendStatus(fiber.StatusNoContent)
}

// Logout godoc
// @Summary      Destroy the session
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
