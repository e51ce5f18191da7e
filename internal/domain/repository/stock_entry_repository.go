package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// StockEntryRepository define el puerto de persistencia para los lotes (StockEntry).
// Las fechas recibidas son días calendario (medianoche UTC).
type StockEntryRepository interface {
	Create(ctx context.Context, entry *entity.StockEntry) error
	GetByID(ctx context.Context, id int64) (*entity.StockEntry, error)
	Update(ctx context.Context, entry *entity.StockEntry) error
	Delete(ctx context.Context, id int64) error
	DeleteByProduct(ctx context.Context, productID int64) error

	// ListByProduct ordena por vencimiento ascendente; los lotes sin fecha van al final.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.StockEntry, error)
	// ListExpiredBefore lotes con expiry_date < date, por vencimiento ascendente.
	ListExpiredBefore(ctx context.Context, date time.Time) ([]*entity.StockEntry, error)
	// ListExpiringBetween lotes con from <= expiry_date <= to, por vencimiento ascendente.
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.StockEntry, error)

	// SumQuantity existencia actual de un producto (0 si no tiene lotes).
	SumQuantity(ctx context.Context, productID int64) (decimal.Decimal, error)
	// SumQuantities existencia por producto; los productos sin lotes no aparecen en el mapa.
	SumQuantities(ctx context.Context) (map[int64]decimal.Decimal, error)
}
