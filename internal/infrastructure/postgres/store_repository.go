package postgres

import (
	"context"
	"fmt"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create registra una tienda.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO stores (id, name, created_at) VALUES ($1, $2, $3)`,
		store.ID, store.Name, store.CreatedAt,
	)
	if err != nil {
		return wrapWrite("insert store", err)
	}
	return nil
}

// GetByName busca por nombre sin distinguir mayúsculas. (nil, nil) si no existe.
func (r *StoreRepo) GetByName(ctx context.Context, name string) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx,
		`SELECT id, name, created_at FROM stores WHERE UPPER(name) = UPPER($1) LIMIT 1`, name,
	).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// List devuelve todas las tiendas ordenadas por nombre.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM stores ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
