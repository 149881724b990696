package repository

import (
	"context"
	"time"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StoreInventoryItem fila de lectura: inventario de una tienda con datos del producto.
type StoreInventoryItem struct {
	ProductID      string
	Name           string
	UPC            string
	StockCode      string
	CategoryName   string
	QuantityOnHand int
	UnitPrice      decimal.Decimal
	LastSyncedAt   time.Time
}

// ProductInventoryRepository define el puerto para el inventario por tienda (DIP).
// Usado dentro de la transacción de ingesta.
type ProductInventoryRepository interface {
	// Upsert por (product_id, store_id): sobrescribe cantidad y precio y refresca last_synced_at.
	Upsert(ctx context.Context, inv *entity.ProductInventory) error
	ListProductIDsByStore(ctx context.Context, storeID string) ([]string, error)
	// DeleteByStoreAndProducts elimina las filas de la tienda para los productos dados; devuelve filas borradas.
	DeleteByStoreAndProducts(ctx context.Context, storeID string, productIDs []string) (int64, error)
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]StoreInventoryItem, error)
	CountByStore(ctx context.Context, storeID string) (int, error)
}
