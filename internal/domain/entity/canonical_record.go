package entity

import "github.com/shopspring/decimal"

// CanonicalRecord una fila de exportación de proveedor ya mapeada al esquema canónico y limpia.
// Name no vacío es requisito para persistir; el resto es opcional.
type CanonicalRecord struct {
	Line           int // línea del CSV (1 = cabecera)
	Name           string
	StockCode      string
	UPC            string
	QuantityOnHand int
	UnitPrice      decimal.Decimal
	Category       string
}
