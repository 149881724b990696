package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo compartido entre tiendas.
// Name es la identidad estable: la ingesta nunca lo modifica, solo actualiza los campos mutables.
type Product struct {
	ID         string
	Name       string // clave única (mayúsculas, normalizado por marca)
	UPC        string // solo dígitos, máx. 20
	StockCode  string
	UnitPrice  decimal.Decimal
	CategoryID string
	Supplier   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
