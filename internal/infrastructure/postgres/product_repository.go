package postgres

import (
	"context"
	"fmt"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert inserta por nombre; si existe sobrescribe los campos mutables y conserva id y created_at.
func (r *ProductRepo) Upsert(ctx context.Context, p *entity.Product) (string, error) {
	query := `
		INSERT INTO products (id, name, upc, stockcode, unit_price, category_id, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO UPDATE SET
			upc         = EXCLUDED.upc,
			stockcode   = EXCLUDED.stockcode,
			unit_price  = EXCLUDED.unit_price,
			category_id = EXCLUDED.category_id,
			supplier    = EXCLUDED.supplier,
			updated_at  = EXCLUDED.updated_at
		RETURNING id`
	var id string
	err := r.q.QueryRow(ctx, query,
		p.ID, p.Name, p.UPC, p.StockCode, p.UnitPrice, nullableID(p.CategoryID), p.Supplier, p.CreatedAt, p.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return "", wrapWrite("upsert product", err)
	}
	return id, nil
}

// GetByName obtiene un producto por nombre exacto. (nil, nil) si no existe.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `
		SELECT id, name, upc, stockcode, unit_price, COALESCE(category_id::text, ''), supplier, created_at, updated_at
		FROM products WHERE name = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, name).Scan(
		&p.ID, &p.Name, &p.UPC, &p.StockCode, &p.UnitPrice, &p.CategoryID, &p.Supplier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
