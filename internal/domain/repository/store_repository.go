package repository

import (
	"context"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// GetByName devuelve (nil, nil) si la tienda no existe.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByName(ctx context.Context, name string) (*entity.Store, error)
	List(ctx context.Context) ([]*entity.Store, error)
}
