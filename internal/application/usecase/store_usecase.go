package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

// StoreUseCase registro de tiendas y consulta de su inventario.
type StoreUseCase struct {
	repo      repository.StoreRepository
	inventory repository.ProductInventoryRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, inventory repository.ProductInventoryRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo, inventory: inventory}
}

// Create registra una tienda. La ingesta nunca crea tiendas; esto es administración.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	name := catalog.CollapseSpaces(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List devuelve todas las tiendas.
func (uc *StoreUseCase) List(ctx context.Context) (*dto.StoreListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{Items: items}, nil
}

// Inventory lista el inventario de una tienda con paginación.
func (uc *StoreUseCase) Inventory(ctx context.Context, storeName string, page dto.PageRequest) (*dto.StoreInventoryResponse, error) {
	page = page.Normalize()
	store, err := uc.repo.GetByName(ctx, catalog.CollapseSpaces(storeName))
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrStoreNotFound, storeName)
	}
	list, err := uc.inventory.ListByStore(ctx, store.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.inventory.CountByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.InventoryItemResponse{
			ProductID:      it.ProductID,
			Name:           it.Name,
			UPC:            it.UPC,
			StockCode:      it.StockCode,
			Category:       it.CategoryName,
			QuantityOnHand: it.QuantityOnHand,
			UnitPrice:      it.UnitPrice,
			LastSyncedAt:   it.LastSyncedAt,
		})
	}
	return &dto.StoreInventoryResponse{
		Store: store.Name,
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}
}
