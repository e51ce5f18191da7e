package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

const stockEntryColumns = `id, product_id, quantity, sub_type, purchased_date, expiry_date, location, notes, created_at, updated_at`

// StockEntryRepo implementación de StockEntryRepository sobre PostgreSQL (usable con pool o tx).
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create inserta un lote. Devuelve domain.ErrNotFound si el producto no existe.
func (r *StockEntryRepo) Create(ctx context.Context, e *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (product_id, quantity, sub_type, purchased_date, expiry_date, location, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		e.ProductID, e.Quantity, e.SubType, e.PurchasedDate, e.ExpiryDate, e.Location, e.Notes,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; (nil, nil) si no existe.
func (r *StockEntryRepo) GetByID(ctx context.Context, id int64) (*entity.StockEntry, error) {
	e, err := scanStockEntry(r.q.QueryRow(ctx, `SELECT `+stockEntryColumns+` FROM stock_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return e, nil
}

// Update reemplaza todos los campos editables del lote.
func (r *StockEntryRepo) Update(ctx context.Context, e *entity.StockEntry) error {
	query := `
		UPDATE stock_entries
		SET quantity = $2, sub_type = $3, purchased_date = $4, expiry_date = $5, location = $6, notes = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		e.ID, e.Quantity, e.SubType, e.PurchasedDate, e.ExpiryDate, e.Location, e.Notes,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update stock entry: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *StockEntryRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByProduct elimina todos los lotes de un producto.
func (r *StockEntryRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_entries WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete stock entries by product: %w", err)
	}
	return nil
}

func (r *StockEntryRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.StockEntry, error) {
	return r.list(ctx, `
		SELECT `+stockEntryColumns+` FROM stock_entries
		WHERE product_id = $1
		ORDER BY expiry_date ASC NULLS LAST, id ASC`, productID)
}

func (r *StockEntryRepo) ListExpiredBefore(ctx context.Context, date time.Time) ([]*entity.StockEntry, error) {
	return r.list(ctx, `
		SELECT `+stockEntryColumns+` FROM stock_entries
		WHERE expiry_date < $1
		ORDER BY expiry_date ASC, id ASC`, date)
}

func (r *StockEntryRepo) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.StockEntry, error) {
	return r.list(ctx, `
		SELECT `+stockEntryColumns+` FROM stock_entries
		WHERE expiry_date >= $1 AND expiry_date <= $2
		ORDER BY expiry_date ASC, id ASC`, from, to)
}

// SumQuantity existencia actual de un producto.
func (r *StockEntryRepo) SumQuantity(ctx context.Context, productID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_entries WHERE product_id = $1`, productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum stock quantity: %w", err)
	}
	return total, nil
}

// SumQuantities existencia agrupada por producto en una sola consulta.
func (r *StockEntryRepo) SumQuantities(ctx context.Context) (map[int64]decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, `SELECT product_id, SUM(quantity) FROM stock_entries GROUP BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("sum stock quantities: %w", err)
	}
	defer rows.Close()
	out := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var (
			productID int64
			total     decimal.Decimal
		)
		if err := rows.Scan(&productID, &total); err != nil {
			return nil, fmt.Errorf("scan stock sum: %w", err)
		}
		out[productID] = total
	}
	return out, rows.Err()
}

func (r *StockEntryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.StockEntry, 0)
	for rows.Next() {
		e, err := scanStockEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanStockEntry(row pgx.Row) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := row.Scan(&e.ID, &e.ProductID, &e.Quantity, &e.SubType, &e.PurchasedDate, &e.ExpiryDate,
		&e.Location, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
