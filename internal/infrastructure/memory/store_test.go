package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newProduct(t *testing.T, repos repository.Repos, name string, cat entity.Category) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Category: cat, Unit: entity.UnitPieces, TargetQuantity: decimal.NewFromInt(10)}
	require.NoError(t, repos.Products.Create(context.Background(), p))
	return p
}

func TestTxRunner_RollbackDescartaCambios(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Run(ctx, func(r repository.Repos) error {
		newProduct(t, r, "Agua", entity.CategoryWater)
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := store.Repos().Products.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list, "un rollback no debe dejar productos")
}

func TestTxRunner_CommitPublicaCambios(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	var id int64
	require.NoError(t, store.Run(ctx, func(r repository.Repos) error {
		id = newProduct(t, r, "Arroz", entity.CategoryDryGoods).ID
		return nil
	}))

	p, err := store.Repos().Products.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Arroz", p.Name)
}

func TestTxRunner_ConcurrenciaSerializada(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	p := newProduct(t, store.Repos(), "Velas", entity.CategoryOther)
	entry := &entity.StockEntry{ProductID: p.ID, Quantity: decimal.Zero}
	require.NoError(t, store.Repos().Entries.Create(ctx, entry))

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Run(ctx, func(r repository.Repos) error {
				e, err := r.Entries.GetByID(ctx, entry.ID)
				if err != nil {
					return err
				}
				e.Quantity = e.Quantity.Add(decimal.NewFromInt(1))
				return r.Entries.Update(ctx, e)
			})
		}()
	}
	wg.Wait()

	got, err := store.Repos().Entries.SumQuantity(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(workers)), "read-modify-write sin pérdidas: got %s", got)
}

func TestProductRepo_DeleteEnCascada(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	repos := store.Repos()
	p := newProduct(t, repos, "Frijoles", entity.CategoryPreservedFood)
	other := newProduct(t, repos, "Agua", entity.CategoryWater)
	require.NoError(t, repos.Entries.Create(ctx, &entity.StockEntry{ProductID: p.ID, Quantity: decimal.NewFromInt(3)}))
	require.NoError(t, repos.Entries.Create(ctx, &entity.StockEntry{ProductID: other.ID, Quantity: decimal.NewFromInt(4)}))

	require.NoError(t, repos.Products.Delete(ctx, p.ID))

	entries, err := repos.Entries.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
	sums, err := repos.Entries.SumQuantities(ctx)
	require.NoError(t, err)
	assert.Len(t, sums, 1)

	assert.ErrorIs(t, repos.Products.Delete(ctx, p.ID), domain.ErrNotFound)
}

func TestStockEntryRepo_CreateProductoInexistente(t *testing.T) {
	store := memory.New()
	err := store.Repos().Entries.Create(context.Background(), &entity.StockEntry{ProductID: 999, Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockEntryRepo_OrdenPorVencimiento(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	repos := store.Repos()
	p := newProduct(t, repos, "Combustible", entity.CategoryFuel)

	late := &entity.StockEntry{ProductID: p.ID, Quantity: decimal.NewFromInt(1), ExpiryDate: date(2027, 5, 1)}
	none := &entity.StockEntry{ProductID: p.ID, Quantity: decimal.NewFromInt(1)}
	early := &entity.StockEntry{ProductID: p.ID, Quantity: decimal.NewFromInt(1), ExpiryDate: date(2026, 11, 1)}
	for _, e := range []*entity.StockEntry{late, none, early} {
		require.NoError(t, repos.Entries.Create(ctx, e))
	}

	list, err := repos.Entries.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	ids := make([]int64, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ID)
	}
	if diff := cmp.Diff([]int64{early.ID, late.ID, none.ID}, ids); diff != "" {
		t.Errorf("orden inesperado (-want +got):\n%s", diff)
	}
}

func TestStockEntryRepo_FiltrosPorFecha(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	repos := store.Repos()
	p := newProduct(t, repos, "Aspirina", entity.CategoryMedicine)

	today := *date(2026, 10, 18)
	expired := &entity.StockEntry{ProductID: p.ID, Quantity: decimal.NewFromInt(1), ExpiryDate: date(2026, 10, 17)}
	todayEntry := &entity.StockEntry{ProductID: p.ID, Quantity: decimal.NewFromInt(1), ExpiryDate: date(2026, 10, 18)}
	edge := &entity.StockEntry{ProductID: p.ID, Quantity: decimal.NewFromInt(1), ExpiryDate: date(2026, 11, 17)}
	far := &entity.StockEntry{ProductID: p.ID, Quantity: decimal.NewFromInt(1), ExpiryDate: date(2026, 11, 18)}
	for _, e := range []*entity.StockEntry{expired, todayEntry, edge, far} {
		require.NoError(t, repos.Entries.Create(ctx, e))
	}

	gotExpired, err := repos.Entries.ListExpiredBefore(ctx, today)
	require.NoError(t, err)
	require.Len(t, gotExpired, 1)
	assert.Equal(t, expired.ID, gotExpired[0].ID)

	gotExpiring, err := repos.Entries.ListExpiringBetween(ctx, today, today.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Len(t, gotExpiring, 2)
	assert.Equal(t, todayEntry.ID, gotExpiring[0].ID)
	assert.Equal(t, edge.ID, gotExpiring[1].ID)
}

func TestUserRepo_UsernameUnico(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	users := store.Repos().Users

	require.NoError(t, users.Create(ctx, &entity.User{Username: "admin", PasswordHash: "x", Roles: "admin,user"}))
	assert.ErrorIs(t, users.Create(ctx, &entity.User{Username: "admin", PasswordHash: "y", Roles: "user"}), domain.ErrDuplicate)

	require.NoError(t, users.DeleteAll(ctx))
	u, err := users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestRepos_DevuelvenCopias(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	notes := "antes"
	p := &entity.Product{Name: "Sal", Category: entity.CategoryDryGoods, Unit: entity.UnitKg, Notes: &notes}
	require.NoError(t, store.Repos().Products.Create(ctx, p))

	got, err := store.Repos().Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	*got.Notes = "mutado"

	again, err := store.Repos().Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "antes", *again.Notes)
}
