package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo tiendas sobre SQLite.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO stores (id, name, created_at) VALUES (?, ?, ?)`,
		store.ID, store.Name, formatTime(store.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByName (nil, nil) si no existe; la columna es NOCASE.
func (r *StoreRepo) GetByName(ctx context.Context, name string) (*entity.Store, error) {
	var (
		s       entity.Store
		created string
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM stores WHERE name = ? LIMIT 1`, name,
	).Scan(&s.ID, &s.Name, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	if s.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, created_at FROM stores ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Store
	for rows.Next() {
		var (
			s       entity.Store
			created string
		)
		if err := rows.Scan(&s.ID, &s.Name, &created); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		if s.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// isUniqueViolation detecta SQLITE_CONSTRAINT_UNIQUE / PRIMARYKEY por el mensaje del driver.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY constraint failed")
}
