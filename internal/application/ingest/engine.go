package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

// DefaultPruneBatchSize tamaño de lote para borrar inventario obsoleto.
const DefaultPruneBatchSize = 500

// EngineOptions parámetros del motor de conciliación.
type EngineOptions struct {
	AdoptParent    bool
	PruneBatchSize int
	Taxonomy       *catalog.Taxonomy
}

// RunRequest conjunto limpio completo de una tienda para una corrida.
type RunRequest struct {
	Store             string
	Supplier          string
	Records           []entity.CanonicalRecord
	RowsRead          int
	Skipped           []dto.SkipReason
	UnresolvedColumns []string
}

// Engine hace que el estado persistido de una tienda coincida con su exportación:
// upsert de productos e inventario y poda de las filas que ya no aparecen.
type Engine struct {
	stores     repository.StoreRepository
	categories repository.CategoryRepository
	txRunner   TxRunner
	opts       EngineOptions
	log        zerolog.Logger
	now        func() time.Time
}

// NewEngine construye el motor.
func NewEngine(
	stores repository.StoreRepository,
	categories repository.CategoryRepository,
	txRunner TxRunner,
	opts EngineOptions,
	log zerolog.Logger,
) *Engine {
	if opts.PruneBatchSize <= 0 {
		opts.PruneBatchSize = DefaultPruneBatchSize
	}
	if opts.Taxonomy == nil {
		opts.Taxonomy = catalog.DefaultTaxonomy()
	}
	return &Engine{
		stores:     stores,
		categories: categories,
		txRunner:   txRunner,
		opts:       opts,
		log:        log,
		now:        time.Now,
	}
}

// Run ejecuta la corrida. La tienda debe existir (domain.ErrStoreNotFound si no, antes de escribir).
// Las categorías padre se confirman en un paso propio; el resto (subcategorías, productos,
// inventario y poda) va en una sola transacción: si algo falla no queda nada de la corrida.
// Un conjunto vacío no toca la BD y se reporta como NoOp.
func (e *Engine) Run(ctx context.Context, req RunRequest) (*dto.RunReport, error) {
	report := &dto.RunReport{
		RunID:             uuid.New().String(),
		Store:             req.Store,
		Supplier:          catalog.Truncate(catalog.CollapseSpaces(req.Supplier), catalog.MaxSupplierLen),
		RowsRead:          req.RowsRead,
		UnresolvedColumns: req.UnresolvedColumns,
		Skipped:           append([]dto.SkipReason{}, req.Skipped...),
		StartedAt:         e.now(),
	}
	log := e.log.With().Str("run_id", report.RunID).Str("store", req.Store).Logger()

	store, err := e.stores.GetByName(ctx, req.Store)
	if err != nil {
		return nil, fmt.Errorf("lookup store: %w", err)
	}
	if store == nil {
		log.Error().Msg("tienda no registrada, no se escribe nada")
		return nil, fmt.Errorf("%w: %q", domain.ErrStoreNotFound, req.Store)
	}

	records := make([]entity.CanonicalRecord, 0, len(req.Records))
	for _, rec := range req.Records {
		if rec.Name == "" {
			report.Skipped = append(report.Skipped, dto.SkipReason{Line: rec.Line, Reason: catalog.SkipEmptyName})
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		report.NoOp = true
		report.FinishedAt = e.now()
		log.Warn().Int("rows_read", report.RowsRead).Msg("conjunto vacío: no se modifica el inventario")
		return report, nil
	}

	existing, err := e.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	resolver := NewCategoryResolver(e.categories, NewCategoryCache(existing), e.opts.Taxonomy, e.opts.AdoptParent, log)
	if err := resolver.EnsureParentCategories(ctx); err != nil {
		return nil, fmt.Errorf("ensure parent categories: %w", err)
	}

	var (
		productsUpserted  int
		inventoryUpserted int
		pruned            int64
	)
	err = e.txRunner.Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		inventoryRepo repository.ProductInventoryRepository,
	) error {
		txResolver := resolver.WithRepository(categoryRepo)
		now := e.now()
		observed := make(map[string]struct{}, len(records))

		for _, rec := range records {
			categoryID, err := txResolver.ResolveLeaf(ctx, rec.Category, rec.Name)
			if err != nil {
				return fmt.Errorf("line %d: %w", rec.Line, err)
			}
			productID, err := productRepo.Upsert(ctx, &entity.Product{
				ID:         uuid.New().String(),
				Name:       rec.Name,
				UPC:        rec.UPC,
				StockCode:  rec.StockCode,
				UnitPrice:  rec.UnitPrice,
				CategoryID: categoryID,
				Supplier:   report.Supplier,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
			if err != nil {
				return fmt.Errorf("line %d: upsert product %q: %w", rec.Line, rec.Name, err)
			}
			productsUpserted++

			err = inventoryRepo.Upsert(ctx, &entity.ProductInventory{
				ProductID:      productID,
				StoreID:        store.ID,
				QuantityOnHand: rec.QuantityOnHand,
				UnitPrice:      rec.UnitPrice,
				LastSyncedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("line %d: upsert inventory %q: %w", rec.Line, rec.Name, err)
			}
			inventoryUpserted++
			observed[productID] = struct{}{}
		}

		current, err := inventoryRepo.ListProductIDsByStore(ctx, store.ID)
		if err != nil {
			return fmt.Errorf("list store inventory: %w", err)
		}
		stale := make([]string, 0)
		for _, id := range current {
			if _, ok := observed[id]; !ok {
				stale = append(stale, id)
			}
		}
		for start := 0; start < len(stale); start += e.opts.PruneBatchSize {
			end := min(start+e.opts.PruneBatchSize, len(stale))
			n, err := inventoryRepo.DeleteByStoreAndProducts(ctx, store.ID, stale[start:end])
			if err != nil {
				return fmt.Errorf("prune inventory: %w", err)
			}
			pruned += n
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("corrida revertida")
		return nil, fmt.Errorf("ingest store %q: %w", req.Store, err)
	}

	report.RowsProcessed = len(records)
	report.ProductsUpserted = productsUpserted
	report.InventoryUpserted = inventoryUpserted
	report.InventoryPruned = pruned
	report.CategoriesCreated = resolver.Created()
	report.CategoriesReparented = resolver.Reparented()
	report.FinishedAt = e.now()

	log.Info().
		Str("supplier", report.Supplier).
		Int("rows_read", report.RowsRead).
		Int("rows_processed", report.RowsProcessed).
		Int("products_upserted", report.ProductsUpserted).
		Int("categories_created", report.CategoriesCreated).
		Int("categories_reparented", report.CategoriesReparented).
		Int64("inventory_pruned", report.InventoryPruned).
		Int("skipped", len(report.Skipped)).
		Dur("elapsed", report.Duration()).
		Msg("corrida de ingesta completada")
	return report, nil
}
