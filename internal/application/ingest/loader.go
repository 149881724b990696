package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
)

// LoadOptions parámetros del cargador.
type LoadOptions struct {
	Profile catalog.ColumnProfile
	Filter  catalog.RowFilter
	QtyMin  int
	Brand   *catalog.BrandEngine
}

// DefaultLoadOptions perfil de columnas y motor de marcas por defecto, sin filtros.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Profile: catalog.DefaultColumnProfile(),
		Brand:   catalog.DefaultBrandEngine(),
	}
}

// LoadResult conjunto canónico de una exportación.
type LoadResult struct {
	Records    []entity.CanonicalRecord
	RowsRead   int
	Skipped    []dto.SkipReason
	Columns    catalog.ColumnMap
	Unresolved []string
}

// Load lee la exportación completa y devuelve los registros limpios, deduplicados por nombre
// (gana la última aparición). Un archivo sin cabecera da un resultado vacío; una cabecera
// sin columna de nombre es error fatal (domain.ErrMissingNameColumn).
func Load(rows RowReader, opts LoadOptions) (*LoadResult, error) {
	if opts.Brand == nil {
		opts.Brand = catalog.DefaultBrandEngine()
	}
	header, err := rows.Read()
	if errors.Is(err, io.EOF) {
		return &LoadResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := opts.Profile.Resolve(header)
	if cols.Name < 0 {
		return nil, fmt.Errorf("%w (cabeceras: %v)", domain.ErrMissingNameColumn, header)
	}

	res := &LoadResult{Columns: cols, Unresolved: cols.Unresolved()}
	byName := make(map[string]int)
	line := 1
	for {
		row, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		res.RowsRead++

		rec := toRecord(row, cols, opts)
		rec.Line = line
		if reason := opts.Filter.Check(rec.Name, rec.Category); reason != "" {
			res.Skipped = append(res.Skipped, dto.SkipReason{Line: line, Name: rec.Name, Reason: reason})
			continue
		}
		if i, ok := byName[rec.Name]; ok {
			prev := res.Records[i]
			res.Skipped = append(res.Skipped, dto.SkipReason{Line: prev.Line, Name: prev.Name, Reason: catalog.SkipDuplicateName})
			res.Records[i] = rec
			continue
		}
		byName[rec.Name] = len(res.Records)
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

func toRecord(row []string, cols catalog.ColumnMap, opts LoadOptions) entity.CanonicalRecord {
	upc := catalog.CleanUPC(catalog.Cell(row, cols.UPC))
	alt := catalog.CleanUPC(catalog.Cell(row, cols.UPCAlt))
	return entity.CanonicalRecord{
		Name:           catalog.CleanName(catalog.Cell(row, cols.Name), opts.Brand),
		StockCode:      catalog.CleanStockCode(catalog.Cell(row, cols.StockCode)),
		UPC:            catalog.BestUPC(upc, alt),
		QuantityOnHand: catalog.ParseQuantity(catalog.Cell(row, cols.Quantity), opts.QtyMin),
		UnitPrice:      catalog.ParsePrice(catalog.Cell(row, cols.Price)),
		Category:       catalog.CleanCategory(catalog.Cell(row, cols.Category)),
	}
}
