package ingest

import (
	"context"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error la transacción se revierte completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		inventoryRepo repository.ProductInventoryRepository,
	) error) error
}

// RowReader fuente de filas CSV: la primera llamada devuelve la cabecera, io.EOF al final.
// *csv.Reader lo implementa.
type RowReader interface {
	Read() ([]string, error)
}
