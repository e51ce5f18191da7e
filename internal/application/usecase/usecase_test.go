package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/stock"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*usecase.ProductUseCase, *usecase.StockUseCase) {
	t.Helper()
	store := memory.New()
	policy := stock.ExpiryPolicy{WindowDays: 30, Now: func() time.Time { return fixedNow }}
	return usecase.NewProductUseCase(store), usecase.NewStockUseCase(store, policy)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func daysFromNow(n int) *dto.Date {
	d := dto.Date{Time: stock.DateOf(fixedNow).AddDate(0, 0, n)}
	return &d
}

func createProduct(t *testing.T, uc *usecase.ProductUseCase, name string, target string) *dto.ProductResponse {
	t.Helper()
	p, err := uc.Create(context.Background(), dto.ProductRequest{
		Name: name, Category: entity.CategoryPreservedFood, Unit: entity.UnitCans, TargetQuantity: dec(target),
	})
	require.NoError(t, err)
	return p
}

func TestProductUseCase_StockBajo(t *testing.T) {
	products, stocks := setup(t)
	ctx := context.Background()

	low := createProduct(t, products, "Atún", "10")
	_, err := stocks.Create(ctx, low.ID, dto.StockEntryRequest{Quantity: dec("3")})
	require.NoError(t, err)

	full := createProduct(t, products, "Frijoles", "10")
	_, err = stocks.Create(ctx, full.ID, dto.StockEntryRequest{Quantity: dec("4")})
	require.NoError(t, err)
	_, err = stocks.Create(ctx, full.ID, dto.StockEntryRequest{Quantity: dec("6")})
	require.NoError(t, err)

	empty := createProduct(t, products, "Maíz", "1")

	list, err := products.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, low.ID, list[0].ID)
	assert.True(t, list[0].CurrentStock.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, empty.ID, list[1].ID)
	assert.True(t, list[1].CurrentStock.IsZero())

	got, err := products.GetByID(ctx, full.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentStock.Equal(decimal.NewFromInt(10)), "10 de 10 no es stock bajo")
}

func TestProductUseCase_DeleteEnCascada(t *testing.T) {
	products, stocks := setup(t)
	ctx := context.Background()

	p := createProduct(t, products, "Sardinas", "5")
	e, err := stocks.Create(ctx, p.ID, dto.StockEntryRequest{Quantity: dec("2"), ExpiryDate: daysFromNow(-1)})
	require.NoError(t, err)

	require.NoError(t, products.Delete(ctx, p.ID))

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	expired, err := stocks.ListExpired(ctx)
	require.NoError(t, err)
	assert.Empty(t, expired)
	assert.ErrorIs(t, stocks.Delete(ctx, e.ID), domain.ErrNotFound)
	assert.ErrorIs(t, products.Delete(ctx, p.ID), domain.ErrNotFound)
}

func TestProductUseCase_ValidacionYFiltro(t *testing.T) {
	products, _ := setup(t)
	ctx := context.Background()

	_, err := products.Create(ctx, dto.ProductRequest{Name: "x", Category: "SNACKS", Unit: entity.UnitKg, TargetQuantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	createProduct(t, products, "Atún", "1")
	_, err = products.Create(ctx, dto.ProductRequest{Name: "Agua", Category: entity.CategoryWater, Unit: entity.UnitLiters, TargetQuantity: dec("20")})
	require.NoError(t, err)

	water := entity.CategoryWater
	list, err := products.List(ctx, &water)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Agua", list[0].Name)

	bad := entity.Category("SNACKS")
	_, err = products.List(ctx, &bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateInexistente(t *testing.T) {
	products, _ := setup(t)
	got, err := products.Update(context.Background(), 99999, dto.ProductRequest{
		Name: "x", Category: entity.CategoryOther, Unit: entity.UnitPieces, TargetQuantity: dec("1"),
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStockUseCase_VencidosYPorVencer(t *testing.T) {
	products, stocks := setup(t)
	ctx := context.Background()
	p := createProduct(t, products, "Ibuprofeno", "1")

	mk := func(days *dto.Date) int64 {
		e, err := stocks.Create(ctx, p.ID, dto.StockEntryRequest{Quantity: dec("1"), ExpiryDate: days})
		require.NoError(t, err)
		return e.ID
	}
	yesterday := mk(daysFromNow(-1))
	today := mk(daysFromNow(0))
	in5 := mk(daysFromNow(5))
	in30 := mk(daysFromNow(30))
	in60 := mk(daysFromNow(60))
	mk(nil)

	expired, err := stocks.ListExpired(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, yesterday, expired[0].ID)
	require.NotNil(t, expired[0].ExpiryStatus)
	assert.Equal(t, "EXPIRED", *expired[0].ExpiryStatus)

	expiring, err := stocks.ListExpiring(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, []int64{today, in5, in30}, ids(expiring))

	narrow, err := stocks.ListExpiring(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{today, in5}, ids(narrow))

	wide, err := stocks.ListExpiring(ctx, 90)
	require.NoError(t, err)
	require.Equal(t, []int64{today, in5, in30, in60}, ids(wide))
	assert.Nil(t, wide[3].ExpiryStatus, "el estado usa la ventana configurada, no days")

	_, err = stocks.ListExpiring(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockUseCase_PatchPutDelete(t *testing.T) {
	products, stocks := setup(t)
	ctx := context.Background()
	p := createProduct(t, products, "Gas", "2")
	loc := "garaje"
	e, err := stocks.Create(ctx, p.ID, dto.StockEntryRequest{Quantity: dec("1"), Location: &loc, ExpiryDate: daysFromNow(400)})
	require.NoError(t, err)
	assert.Nil(t, e.ExpiryStatus)

	patched, err := stocks.UpdateQuantity(ctx, e.ID, dto.StockQuantityPatch{Quantity: dec("2.5")})
	require.NoError(t, err)
	assert.True(t, patched.Quantity.Equal(decimal.RequireFromString("2.5")))
	require.NotNil(t, patched.Location)
	assert.Equal(t, "garaje", *patched.Location, "PATCH conserva los demás campos")

	replaced, err := stocks.Replace(ctx, e.ID, dto.StockEntryRequest{Quantity: dec("1")})
	require.NoError(t, err)
	assert.Nil(t, replaced.Location, "PUT reemplaza todos los campos")
	assert.Nil(t, replaced.ExpiryDate)
	assert.Equal(t, p.ID, replaced.ProductID)

	_, err = stocks.UpdateQuantity(ctx, 99999, dto.StockQuantityPatch{Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = stocks.UpdateQuantity(ctx, e.ID, dto.StockQuantityPatch{Quantity: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, stocks.Delete(ctx, e.ID))
	list, err := stocks.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStockUseCase_ProductoInexistente(t *testing.T) {
	_, stocks := setup(t)
	ctx := context.Background()

	_, err := stocks.Create(ctx, 99999, dto.StockEntryRequest{Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = stocks.ListByProduct(ctx, 99999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCategories(t *testing.T) {
	cats := usecase.ListCategories()
	require.Len(t, cats, len(entity.Categories()))
	for _, c := range cats {
		assert.NotEmpty(t, c.ApproachingAction, c.Category)
		assert.NotEmpty(t, c.ExpiredAction, c.Category)
	}
}

func ids(list []dto.StockEntryResponse) []int64 {
	out := make([]int64, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}
