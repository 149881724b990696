package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/usecase"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/sqlite"
)

func newStoreUseCase(t *testing.T) (*usecase.StoreUseCase, *sqlite.ProductRepo, *sqlite.ProductInventoryRepo) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "stores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.EnsureSchema(ctx, db))

	inv := sqlite.NewProductInventoryRepository(db)
	return usecase.NewStoreUseCase(sqlite.NewStoreRepository(db), inv), sqlite.NewProductRepository(db), inv
}

func TestStoreUseCase_Create(t *testing.T) {
	uc, _, _ := newStoreUseCase(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateStoreRequest{Name: "  Calle   8 "})
	require.NoError(t, err)
	assert.Equal(t, "Calle 8", out.Name)
	assert.NotEmpty(t, out.ID)

	_, err = uc.Create(ctx, dto.CreateStoreRequest{Name: "Calle 8"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateStoreRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
}

func TestStoreUseCase_InventoryPaginates(t *testing.T) {
	uc, products, inv := newStoreUseCase(t)
	ctx := context.Background()

	store, err := uc.Create(ctx, dto.CreateStoreRequest{Name: "MKT"})
	require.NoError(t, err)

	now := time.Now()
	for _, name := range []string{"C ITEM", "A ITEM", "B ITEM"} {
		id, err := products.Upsert(ctx, &entity.Product{
			ID: name + "-id", Name: name, UnitPrice: decimal.RequireFromString("2.50"), Supplier: "CigarPOS",
			CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)
		require.NoError(t, inv.Upsert(ctx, &entity.ProductInventory{
			ProductID: id, StoreID: store.ID, QuantityOnHand: 3,
			UnitPrice: decimal.RequireFromString("2.50"), LastSyncedAt: now,
		}))
	}

	page, err := uc.Inventory(ctx, "MKT", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "A ITEM", page.Items[0].Name)
	assert.True(t, page.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))

	page, err = uc.Inventory(ctx, "MKT", dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "C ITEM", page.Items[0].Name)

	_, err = uc.Inventory(ctx, "NOPE", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}
