package postgres

import (
	"context"
	"fmt"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// ListAll carga la taxonomía completa.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, slug, parent_id, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create inserta una categoría. Nombre o slug repetido -> domain.ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO categories (id, name, slug, parent_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Slug, c.ParentID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return wrapWrite(fmt.Sprintf("insert category %q", c.Name), err)
	}
	return nil
}

// UpdateParent mueve la categoría bajo otro padre (nil = raíz).
func (r *CategoryRepo) UpdateParent(ctx context.Context, id string, parentID *string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET parent_id = $2, updated_at = now() WHERE id = $1`, id, parentID)
	if err != nil {
		return fmt.Errorf("update category parent: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
