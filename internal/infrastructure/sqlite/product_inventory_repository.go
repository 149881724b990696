package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

var _ repository.ProductInventoryRepository = (*ProductInventoryRepo)(nil)

// ProductInventoryRepo inventario por tienda sobre SQLite.
type ProductInventoryRepo struct {
	q Querier
}

// NewProductInventoryRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewProductInventoryRepository(q Querier) *ProductInventoryRepo {
	return &ProductInventoryRepo{q: q}
}

func (r *ProductInventoryRepo) Upsert(ctx context.Context, inv *entity.ProductInventory) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO product_inventory (product_id, store_id, quantity_on_hand, unit_price, last_synced_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (product_id, store_id) DO UPDATE SET
			quantity_on_hand = excluded.quantity_on_hand,
			unit_price       = excluded.unit_price,
			last_synced_at   = excluded.last_synced_at`,
		inv.ProductID, inv.StoreID, inv.QuantityOnHand, inv.UnitPrice.StringFixed(2), formatTime(inv.LastSyncedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert product inventory: %w", err)
	}
	return nil
}

func (r *ProductInventoryRepo) ListProductIDsByStore(ctx context.Context, storeID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT product_id FROM product_inventory WHERE store_id = ?`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list inventory product ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteByStoreAndProducts usa IN (?, ...); el llamador limita el tamaño del lote.
func (r *ProductInventoryRepo) DeleteByStoreAndProducts(ctx context.Context, storeID string, productIDs []string) (int64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}
	args := make([]any, 0, len(productIDs)+1)
	args = append(args, storeID)
	for _, id := range productIDs {
		args = append(args, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(productIDs)), ",")
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM product_inventory WHERE store_id = ? AND product_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("delete product inventory: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete product inventory: %w", err)
	}
	return n, nil
}

func (r *ProductInventoryRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]repository.StoreInventoryItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT pi.product_id, p.name, p.upc, p.stockcode, COALESCE(c.name, ''),
		       pi.quantity_on_hand, pi.unit_price, pi.last_synced_at
		FROM product_inventory pi
		JOIN products p ON p.id = pi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE pi.store_id = ?
		ORDER BY p.name
		LIMIT ? OFFSET ?`, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list store inventory: %w", err)
	}
	defer rows.Close()

	var list []repository.StoreInventoryItem
	for rows.Next() {
		var (
			it     repository.StoreInventoryItem
			synced string
		)
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UPC, &it.StockCode, &it.CategoryName,
			&it.QuantityOnHand, &it.UnitPrice, &synced); err != nil {
			return nil, fmt.Errorf("scan store inventory: %w", err)
		}
		if it.LastSyncedAt, err = parseTime(synced); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *ProductInventoryRepo) CountByStore(ctx context.Context, storeID string) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM product_inventory WHERE store_id = ?`, storeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count store inventory: %w", err)
	}
	return n, nil
}
