package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/vendorconnect/api/internal/application/auth"
	"github.com/vendorconnect/api/internal/application/usecase"
	"github.com/vendorconnect/api/internal/domain/repository"
	"github.com/vendorconnect/api/internal/infrastructure/bolt"
	"github.com/vendorconnect/api/internal/infrastructure/memory"
	infrapdf "github.com/vendorconnect/api/internal/infrastructure/pdf"
	"github.com/vendorconnect/api/internal/infrastructure/postgres"
	"github.com/vendorconnect/api/internal/infrastructure/state"
	httpRouter "github.com/vendorconnect/api/internal/interfaces/http"
	"github.com/vendorconnect/api/pkg/config"
	"github.com/vendorconnect/api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("starting application")

	ctx := context.Background()
	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("open state store")
	}
	defer store.Close()

	catalogRepo := state.NewCatalogRepository(store)
	sessionRepo := state.NewSessionRepository(store)

	// Mutate-then-notify: the catalog publishes after each successful write.
	bus := EventBus.New()
	_ = bus.Subscribe(usecase.TopicCatalogChanged, func(action, productID string) {
		log.Info().Str("action", action).Str("product_id", productID).Msg("catalog changed")
	})

	authUC := appauth.NewAuthUseCase(sessionRepo, appauth.Config{
		JWT: appauth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		SendDelay:   cfg.OTP.SendDelay,
		VerifyDelay: cfg.OTP.VerifyDelay,
	})
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, bus)
	marketUC := usecase.NewMarketUseCase(catalogRepo, sessionRepo)
	contactUC := usecase.NewContactUseCase(catalogRepo, cfg.OTP.CountryCode)
	exportUC := usecase.NewExportUseCase(catalogRepo, infrapdf.NewMarotoPriceListGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VendorConnect API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		MarketUC:  marketUC,
		ContactUC: contactUC,
		ExportUC:  exportUC,
		Sessions:  sessionRepo,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// openStore picks the state backend from configuration.
func openStore(ctx context.Context, cfg config.StoreConfig) (repository.Store, error) {
	switch cfg.Driver {
	case "bolt":
		return bolt.Open(cfg.BoltPath)
	case "postgres":
		return postgres.Open(ctx, cfg)
	default:
		return memory.New(), nil
	}
}
