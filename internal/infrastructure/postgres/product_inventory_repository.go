package postgres

import (
	"context"
	"fmt"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

var _ repository.ProductInventoryRepository = (*ProductInventoryRepo)(nil)

// ProductInventoryRepo inventario por tienda sobre PostgreSQL (pool o tx).
type ProductInventoryRepo struct {
	q Querier
}

// NewProductInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductInventoryRepository(q Querier) *ProductInventoryRepo {
	return &ProductInventoryRepo{q: q}
}

// Upsert por (product_id, store_id).
func (r *ProductInventoryRepo) Upsert(ctx context.Context, inv *entity.ProductInventory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO product_inventory (product_id, store_id, quantity_on_hand, unit_price, last_synced_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, store_id) DO UPDATE SET
			quantity_on_hand = EXCLUDED.quantity_on_hand,
			unit_price       = EXCLUDED.unit_price,
			last_synced_at   = EXCLUDED.last_synced_at`,
		inv.ProductID, inv.StoreID, inv.QuantityOnHand, inv.UnitPrice, inv.LastSyncedAt,
	)
	if err != nil {
		return wrapWrite("upsert product inventory", err)
	}
	return nil
}

// ListProductIDsByStore ids de producto con inventario en la tienda.
func (r *ProductInventoryRepo) ListProductIDsByStore(ctx context.Context, storeID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT product_id FROM product_inventory WHERE store_id = $1`, storeID)
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

// DeleteByStoreAndProducts borra el inventario de la tienda para esos productos (el producto se conserva).
func (r *ProductInventoryRepo) DeleteByStoreAndProducts(ctx context.Context, storeID string, productIDs []string) (int64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM product_inventory WHERE store_id = $1 AND product_id = ANY($2::uuid[])`,
		storeID, productIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("delete product inventory: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListByStore inventario de la tienda con datos de producto y categoría, ordenado por nombre.
func (r *ProductInventoryRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]repository.StoreInventoryItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT pi.product_id, p.name, p.upc, p.stockcode, COALESCE(c.name, ''),
		       pi.quantity_on_hand, pi.unit_price, pi.last_synced_at
		FROM product_inventory pi
		JOIN products p ON p.id = pi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE pi.store_id = $1
		ORDER BY p.name
		LIMIT $2 OFFSET $3`, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list store inventory: %w", err)
	}
	defer rows.Close()

	var list []repository.StoreInventoryItem
	for rows.Next() {
		var it repository.StoreInventoryItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UPC, &it.StockCode, &it.CategoryName,
			&it.QuantityOnHand, &it.UnitPrice, &it.LastSyncedAt); err != nil {
			return nil, fmt.Errorf("scan store inventory: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// CountByStore total de filas de inventario de la tienda.
func (r *ProductInventoryRepo) CountByStore(ctx context.Context, storeID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM product_inventory WHERE store_id = $1`, storeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count store inventory: %w", err)
	}
	return n, nil
}
