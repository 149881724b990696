package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductInventory existencia de un producto en una tienda (clave compuesta producto+tienda).
// Refleja únicamente la última ingesta de esa tienda.
type ProductInventory struct {
	ProductID      string
	StoreID        string
	QuantityOnHand int
	UnitPrice      decimal.Decimal
	LastSyncedAt   time.Time
}
