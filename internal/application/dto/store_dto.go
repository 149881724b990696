package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStoreRequest entrada para registrar una tienda.
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreListResponse lista de tiendas (son pocas, sin paginación).
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
}

// InventoryItemResponse existencia de un producto en la tienda.
type InventoryItemResponse struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	UPC            string          `json:"upc,omitempty"`
	StockCode      string          `json:"stockcode,omitempty"`
	Category       string          `json:"category"`
	QuantityOnHand int             `json:"quantity_on_hand"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LastSyncedAt   time.Time       `json:"last_synced_at"`
}

// StoreInventoryResponse inventario paginado de una tienda.
type StoreInventoryResponse struct {
	Store string                  `json:"store"`
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
