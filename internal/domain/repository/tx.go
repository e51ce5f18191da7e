package repository

import "context"

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Products ProductRepository
	Entries  StockEntryRepository
	Users    UserRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// Store almacén completo: transacciones más repositorios para lecturas sueltas.
type Store interface {
	TxRunner
	Repos() Repos
}
