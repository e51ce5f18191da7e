// Package storage selecciona el adaptador de persistencia según DB_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Despensa-api/pkg/config"
)

// Open devuelve el almacén configurado y la función que lo cierra.
// Con "postgres" conecta, aplica migraciones y devuelve el TxRunner sobre el pool.
func Open(ctx context.Context, cfg config.DBConfig) (repository.Store, func(), error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(), func() {}, nil
	case "postgres", "":
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migraciones: %w", err)
		}
		return postgres.NewTxRunner(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("DB_DRIVER no soportado: %q", cfg.Driver)
	}
}
