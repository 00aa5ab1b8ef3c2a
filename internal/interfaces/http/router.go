package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vendorconnect/api/internal/application/auth"
	"github.com/vendorconnect/api/internal/application/usecase"
	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *usecase.CatalogUseCase
	MarketUC  *usecase.MarketUseCase
	ContactUC *usecase.ContactUseCase
	ExportUC  *usecase.ExportUseCase
	Sessions  repository.SessionRepository
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/otp", authHandler.SendCode)
	authGroup.Post("/verify", authHandler.VerifyCode)
	authGroup.Post("/change-number", authHandler.ChangeNumber)

	// Everything below requires a Bearer token AND a live stored session:
	// the gate runs before any protected read.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), SessionGate(deps.Sessions))
	protected.Post("/auth/logout", authHandler.Logout)

	// Supplier dashboard
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.ExportUC)
	products := protected.Group("/products", RequireRole(entity.RoleSupplier))
	products.Get("/", catalogHandler.List)
	products.Post("/", catalogHandler.Add)
	products.Get("/stats", catalogHandler.Stats)
	products.Get("/export", catalogHandler.ExportPDF)
	products.Delete("/:id", catalogHandler.Remove)
	products.Patch("/:id/stock", catalogHandler.ToggleStock)

	// Vendor dashboard
	marketHandler := NewMarketHandler(deps.MarketUC, deps.ContactUC)
	market := protected.Group("/market", RequireRole(entity.RoleVendor))
	market.Get("/products", marketHandler.Browse)
	market.Get("/recommendations", marketHandler.Recommendations)
	market.Post("/products/:id/contact", marketHandler.Contact)
	market.Get("/profile", marketHandler.GetProfile)
	market.Put("/profile", marketHandler.SetProfile)
}
