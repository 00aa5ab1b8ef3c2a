package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/domain/entity"
	apihttp "github.com/vendorconnect/api/internal/interfaces/http"
	"github.com/vendorconnect/api/internal/infrastructure/memory"
	"github.com/vendorconnect/api/internal/infrastructure/state"
	"github.com/vendorconnect/api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// buildTestApp wires the full protected chain over an in-memory store and
// exposes one supplier-only and one vendor-only route.
func buildTestApp(t *testing.T) (*fiber.App, *state.SessionRepository) {
	t.Helper()
	sessions := state.NewSessionRepository(memory.New())

	app := fiber.New()
	protected := app.Group("/api", apihttp.AuthMiddleware(testSecret), apihttp.SessionGate(sessions))
	protected.Get("/products", apihttp.RequireRole(entity.RoleSupplier), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"phone": apihttp.GetPhone(c), "role": apihttp.GetRole(c)})
	})
	protected.Get("/market/products", apihttp.RequireRole(entity.RoleVendor), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, sessions
}

// login persists a session and mints the matching token.
func login(t *testing.T, sessions *state.SessionRepository, phone, role string) string {
	t.Helper()
	require.NoError(t, sessions.Save(context.Background(), &entity.Session{
		Role: role, Phone: phone, Authenticated: true,
	}))
	token, err := jwt.Generate(testSecret, phone, role, "vendorconnect-test", 60)
	require.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, path, token string) (int, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestProtected_NoHeader_Unauthorized(t *testing.T) {
	app, _ := buildTestApp(t)

	status, body := get(t, app, "/api/products", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestProtected_MalformedToken_Unauthorized(t *testing.T) {
	app, _ := buildTestApp(t)

	status, body := get(t, app, "/api/products", "not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestProtected_WrongSecret_Unauthorized(t *testing.T) {
	app, sessions := buildTestApp(t)
	login(t, sessions, "9876543210", entity.RoleSupplier)

	forged, err := jwt.Generate("some-other-secret", "9876543210", entity.RoleSupplier, "x", 60)
	require.NoError(t, err)

	status, body := get(t, app, "/api/products", forged)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestProtected_ExpiredToken_Unauthorized(t *testing.T) {
	app, sessions := buildTestApp(t)
	login(t, sessions, "9876543210", entity.RoleSupplier)

	expired, err := jwt.Generate(testSecret, "9876543210", entity.RoleSupplier, "x", -1)
	require.NoError(t, err)

	status, body := get(t, app, "/api/products", expired)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestProtected_ValidTokenAndSession_OK(t *testing.T) {
	app, sessions := buildTestApp(t)
	token := login(t, sessions, "9876543210", entity.RoleSupplier)

	status, _ := get(t, app, "/api/products", token)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestProtected_SessionCleared_TokenAloneNotEnough(t *testing.T) {
	app, sessions := buildTestApp(t)
	token := login(t, sessions, "9876543210", entity.RoleSupplier)
	require.NoError(t, sessions.Clear(context.Background()))

	// The token is still cryptographically valid, but logout removed the
	// stored session, so the gate closes.
	status, body := get(t, app, "/api/products", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "SESSION_GONE", body.Code)
}

func TestProtected_SessionForDifferentUser_Rejected(t *testing.T) {
	app, sessions := buildTestApp(t)
	token := login(t, sessions, "9876543210", entity.RoleSupplier)

	// Another login replaced the single active session.
	login(t, sessions, "1112223334", entity.RoleSupplier)

	status, body := get(t, app, "/api/products", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "SESSION_GONE", body.Code)
}

func TestProtected_WrongRole_Forbidden(t *testing.T) {
	app, sessions := buildTestApp(t)
	token := login(t, sessions, "9876543210", entity.RoleVendor)

	status, body := get(t, app, "/api/products", token)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body.Code)

	status, _ = get(t, app, "/api/market/products", token)
	assert.Equal(t, fiber.StatusOK, status)
}
