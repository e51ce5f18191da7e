package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.Store = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := repository.Repos{
		Products: NewProductRepository(tx),
		Entries:  NewStockEntryRepository(tx),
		Users:    NewUserRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Repos devuelve repositorios sobre el pool, para lecturas fuera de transacción.
func (r *TxRunner) Repos() repository.Repos {
	return repository.Repos{
		Products: NewProductRepository(r.pool),
		Entries:  NewStockEntryRepository(r.pool),
		Users:    NewUserRepository(r.pool),
	}
}
