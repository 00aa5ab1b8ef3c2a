package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
	"github.com/vendorconnect/api/pkg/jwt"
)

// Locals keys for the verified phone and role in Fiber.
const (
	LocalPhone = "phone"
	LocalRole  = "role"
)

// AuthMiddleware validates the Bearer JWT and loads phone and role into
// c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		phone, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalPhone, phone)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// SessionGate re-reads the persisted session and rejects the request when
// it is gone (logout), partial, or no longer matches the token. It must
// run AFTER AuthMiddleware and BEFORE any protected read: no handler runs
// until the gate resolves.
func SessionGate(sessions repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := sessions.Get(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		if !session.Valid("") || session.Phone != GetPhone(c) || session.Role != GetRole(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_GONE", Message: "session is no longer active, log in again"})
		}
		return c.Next()
	}
}

// RequireRole authorizes only the given dashboard role. Must run after
// AuthMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := GetRole(c)
		if !entity.ValidRole(got) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token carries no dashboard role"})
		}
		if got != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "this dashboard belongs to the " + role + " role"})
		}
		return c.Next()
	}
}

// GetPhone returns the verified phone from the context (after AuthMiddleware).
func GetPhone(c *fiber.Ctx) string {
	v := c.Locals(LocalPhone)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole returns the role from the context (after AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
