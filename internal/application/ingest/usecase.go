package ingest

import (
	"context"
	"fmt"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
)

// UseCase orquesta cargador y motor: run(csv, proveedor, tienda).
type UseCase struct {
	engine          *Engine
	load            LoadOptions
	taxonomy        *catalog.Taxonomy
	defaultSupplier string
}

// NewUseCase construye el caso de uso. defaultSupplier se usa cuando la llamada no trae proveedor.
func NewUseCase(engine *Engine, load LoadOptions, taxonomy *catalog.Taxonomy, defaultSupplier string) *UseCase {
	if taxonomy == nil {
		taxonomy = catalog.DefaultTaxonomy()
	}
	return &UseCase{engine: engine, load: load, taxonomy: taxonomy, defaultSupplier: defaultSupplier}
}

// Ingest carga la exportación y concilia la tienda.
func (uc *UseCase) Ingest(ctx context.Context, rows RowReader, store, supplier string) (*dto.RunReport, error) {
	if catalog.CollapseSpaces(store) == "" {
		return nil, fmt.Errorf("store: %w", domain.ErrInvalidInput)
	}
	res, err := Load(rows, uc.load)
	if err != nil {
		return nil, err
	}
	if catalog.CollapseSpaces(supplier) == "" {
		supplier = uc.defaultSupplier
	}
	return uc.engine.Run(ctx, RunRequest{
		Store:             catalog.CollapseSpaces(store),
		Supplier:          supplier,
		Records:           res.Records,
		RowsRead:          res.RowsRead,
		Skipped:           res.Skipped,
		UnresolvedColumns: res.Unresolved,
	})
}

// Preview normaliza sin tocar la BD e indica la categoría que se asignaría.
func (uc *UseCase) Preview(rows RowReader) (*dto.PreviewResponse, error) {
	res, err := Load(rows, uc.load)
	if err != nil {
		return nil, err
	}
	out := &dto.PreviewResponse{
		RowsRead:          res.RowsRead,
		Records:           make([]dto.PreviewRecord, 0, len(res.Records)),
		Skipped:           res.Skipped,
		UnresolvedColumns: res.Unresolved,
	}
	for _, rec := range res.Records {
		parent, _ := uc.taxonomy.ParentFor(rec.Category)
		pr := dto.PreviewRecord{
			Line:           rec.Line,
			Name:           rec.Name,
			StockCode:      rec.StockCode,
			UPC:            rec.UPC,
			QuantityOnHand: rec.QuantityOnHand,
			UnitPrice:      rec.UnitPrice.StringFixed(2),
			Category:       rec.Category,
			ParentCategory: parent,
		}
		if rule, ok := uc.taxonomy.InferSubcategory(rec.Name, parent); ok {
			pr.Subcategory = rule.Name
		}
		out.Records = append(out.Records, pr)
	}
	return out, nil
}
