package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos sobre SQLite.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert por nombre; en conflicto conserva id y created_at.
func (r *ProductRepo) Upsert(ctx context.Context, p *entity.Product) (string, error) {
	query := `
		INSERT INTO products (id, name, upc, stockcode, unit_price, category_id, supplier, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			upc         = excluded.upc,
			stockcode   = excluded.stockcode,
			unit_price  = excluded.unit_price,
			category_id = excluded.category_id,
			supplier    = excluded.supplier,
			updated_at  = excluded.updated_at
		RETURNING id`
	var id string
	err := r.q.QueryRowContext(ctx, query,
		p.ID, p.Name, p.UPC, p.StockCode, p.UnitPrice.StringFixed(2), nullString(&p.CategoryID), p.Supplier,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert product: %w", err)
	}
	return id, nil
}

func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	var (
		p                entity.Product
		created, updated string
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, upc, stockcode, unit_price, COALESCE(category_id, ''), supplier, created_at, updated_at
		FROM products WHERE name = ?`, name,
	).Scan(&p.ID, &p.Name, &p.UPC, &p.StockCode, &p.UnitPrice, &p.CategoryID, &p.Supplier, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &p, nil
}
