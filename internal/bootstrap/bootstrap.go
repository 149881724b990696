// Package bootstrap arma las dependencias compartidas por la API y la CLI según DB_DRIVER.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/ingest"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/usecase"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/postgres"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/sqlite"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/pkg/config"
)

// App dependencias listas para usar.
type App struct {
	IngestUC     *ingest.UseCase
	StoreUC      *usecase.StoreUseCase
	EnsureSchema func(ctx context.Context) error
	Close        func()
}

type adapters struct {
	stores     repository.StoreRepository
	categories repository.CategoryRepository
	inventory  repository.ProductInventoryRepository
	txRunner   ingest.TxRunner
}

// New abre la base configurada y construye casos de uso.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	var (
		ad     adapters
		schema func(ctx context.Context) error
		closer func()
	)
	switch cfg.DB.Driver {
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.DB.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		ad = adapters{
			stores:     sqlite.NewStoreRepository(db),
			categories: sqlite.NewCategoryRepository(db),
			inventory:  sqlite.NewProductInventoryRepository(db),
			txRunner:   sqlite.NewTxRunner(db),
		}
		schema = func(ctx context.Context) error { return sqlite.EnsureSchema(ctx, db) }
		closer = func() { _ = db.Close() }
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		ad = adapters{
			stores:     postgres.NewStoreRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
			inventory:  postgres.NewProductInventoryRepository(pool),
			txRunner:   postgres.NewTxRunner(pool),
		}
		schema = func(ctx context.Context) error { return postgres.EnsureSchema(ctx, pool) }
		closer = pool.Close
	}
	log.Debug().Str("driver", cfg.DB.Driver).Msg("base de datos abierta")

	taxonomy := catalog.DefaultTaxonomy()
	engine := ingest.NewEngine(ad.stores, ad.categories, ad.txRunner, ingest.EngineOptions{
		AdoptParent:    cfg.Ingest.AdoptParent,
		PruneBatchSize: cfg.Ingest.PruneBatchSize,
		Taxonomy:       taxonomy,
	}, log)

	return &App{
		IngestUC:     ingest.NewUseCase(engine, LoadOptions(cfg.Ingest), taxonomy, cfg.Ingest.Supplier),
		StoreUC:      usecase.NewStoreUseCase(ad.stores, ad.inventory),
		EnsureSchema: schema,
		Close:        closer,
	}, nil
}

// LoadOptions traduce la configuración de ingesta a opciones del cargador.
func LoadOptions(cfg config.IngestConfig) ingest.LoadOptions {
	opts := ingest.DefaultLoadOptions()
	opts.Profile = opts.Profile.Merge(catalog.ColumnProfile{
		Name:      cfg.Columns.Name,
		StockCode: cfg.Columns.StockCode,
		UPC:       cfg.Columns.UPC,
		UPCAlt:    cfg.Columns.UPCAlt,
		Quantity:  cfg.Columns.Quantity,
		Price:     cfg.Columns.Price,
		Category:  cfg.Columns.Category,
	})
	opts.Filter = catalog.RowFilter{
		AllowedCategories:  cfg.AllowedCategories,
		RequiredNameTokens: cfg.RequiredNameTokens,
		ExcludedNameTokens: cfg.ExcludedNameTokens,
	}
	opts.QtyMin = cfg.QtyMin
	return opts
}
