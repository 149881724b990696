package repository

import (
	"context"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Upsert inserta por nombre único o, si ya existe, sobrescribe upc, stockcode, precio,
	// categoría y proveedor. Devuelve el ID vigente (el existente en caso de conflicto).
	Upsert(ctx context.Context, product *entity.Product) (string, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
}
