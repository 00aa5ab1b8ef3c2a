// Command seed loads the demo catalog into the configured store, the same
// mock listings the original dashboards shipped with. It only writes when
// the catalog is empty so it is safe to run repeatedly.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
	"github.com/vendorconnect/api/internal/infrastructure/bolt"
	"github.com/vendorconnect/api/internal/infrastructure/memory"
	"github.com/vendorconnect/api/internal/infrastructure/postgres"
	"github.com/vendorconnect/api/internal/infrastructure/state"
	"github.com/vendorconnect/api/pkg/config"
	"github.com/vendorconnect/api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("open state store")
	}
	defer store.Close()

	repo := state.NewCatalogRepository(store)
	existing, err := repo.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}
	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("catalog already seeded, nothing to do")
		return
	}

	products := demoCatalog()
	if err := repo.Replace(ctx, products); err != nil {
		log.Fatal().Err(err).Msg("write demo catalog")
	}
	log.Info().Int("count", len(products)).Str("store", cfg.Store.Driver).Msg("demo catalog seeded")
}

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

func demoCatalog() []*entity.Product {
	now := time.Now()
	price := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	bulk := func(n int64) *decimal.Decimal { d := decimal.NewFromInt(n); return &d }
	date := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return &t
	}
	mk := func(p entity.Product) *entity.Product {
		p.ID = uuid.New().String()
		p.InStock = true
		p.IsVerified = true
		p.CreatedAt = now
		p.UpdatedAt = now
		return &p
	}

	return []*entity.Product{
		mk(entity.Product{
			Name: "Fresh Tomatoes", HindiName: "ताज़े टमाटर",
			Price: price(18), Unit: "per kg", Category: "vegetables",
			Description: "Direct from farm, perfect for chaat and cooking. Hand-picked this morning.",
			Supplier:    "किसान डायरेक्ट फार्म", Location: "1.2 km - आपके पास",
			Rating: 4.8, Phone: "9876543210",
			BulkPrice: bulk(15), MinBulkQty: 10,
			Freshness: "आज सुबह की फसल", BestFor: []string{"chaat", "sandwich", "dosa"},
			ManufacturingDate: date("2025-01-27"), ExpiryDate: date("2025-01-30"),
		}),
		mk(entity.Product{
			Name: "Onions (Medium)", HindiName: "प्याज (मध्यम)",
			Price: price(22), Unit: "per kg", Category: "vegetables",
			Supplier: "वेजिटेबल मंडी डायरेक्ट", Location: "2.1 km - थोक मार्केट",
			Rating: 4.6, Phone: "9876543211",
			BulkPrice: bulk(18), MinBulkQty: 5,
			Freshness: "कल की फसल", BestFor: []string{"chaat", "parathas", "tea"},
		}),
		mk(entity.Product{
			Name: "Green Chillies", HindiName: "हरी मिर्च (तेज़)",
			Price: price(60), Unit: "per kg", Category: "spices",
			Description: "Fresh, hot green chillies perfect for street food vendors.",
			Supplier:    "मसाला किंग", Location: "800m - स्पाइस मार्केट",
			Rating: 4.9, Phone: "9876543212",
			BulkPrice: bulk(50), MinBulkQty: 2,
			Freshness: "बिल्कुल ताज़ी", BestFor: []string{"chaat", "dosa", "parathas"},
			ManufacturingDate: date("2025-01-26"), ExpiryDate: date("2025-02-02"),
		}),
		mk(entity.Product{
			Name: "Pure Mustard Oil", HindiName: "शुद्ध सरसों का तेल",
			Price: price(140), Unit: "per liter", Category: "oil",
			Supplier: "तेल वाला भाई", Location: "1.5 km - ऑयल शॉप",
			Rating: 4.7, Phone: "9876543213",
			BulkPrice: bulk(130), MinBulkQty: 5,
			Freshness: "ताज़ा निकाला गया", BestFor: []string{"parathas", "chaat", "frying"},
		}),
		mk(entity.Product{
			Name: "Refined Flour (Maida)", HindiName: "मैदा (बारीक)",
			Price: price(35), Unit: "per kg", Category: "flour",
			Supplier: "आटा चक्की वाले", Location: "3.2 km - मिल एरिया",
			Rating: 4.4, Phone: "9876543214",
			BulkPrice: bulk(28), MinBulkQty: 10,
			Freshness: "आज पिसा गया", BestFor: []string{"dosa", "parathas", "batter"},
		}),
		mk(entity.Product{
			Name: "Fresh Coriander", HindiName: "हरा धनिया",
			Price: price(25), Unit: "per bundle", Category: "vegetables",
			Supplier: "हरी सब्जी वाला", Location: "900m - सब्जी मंडी",
			Rating: 4.5, Phone: "9876543215",
			Freshness: "सुबह 6 बजे की कटी", BestFor: []string{"chaat", "garnishing"},
		}),
	}
}
