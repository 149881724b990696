package repository

import (
	"context"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// ListAll carga la taxonomía completa; se usa una vez por corrida para poblar la caché.
	ListAll(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	UpdateParent(ctx context.Context, id string, parentID *string) error
}
