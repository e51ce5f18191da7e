// Package memory implementa los puertos de repositorio en memoria.
// Se usa con DB_DRIVER=memory para desarrollo local y como almacén de los tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

type state struct {
	products map[int64]entity.Product
	entries  map[int64]entity.StockEntry
	users    map[int64]entity.User
	lastID   int64
}

func newState() *state {
	return &state{
		products: make(map[int64]entity.Product),
		entries:  make(map[int64]entity.StockEntry),
		users:    make(map[int64]entity.User),
	}
}

func (s *state) clone() *state {
	c := &state{
		products: make(map[int64]entity.Product, len(s.products)),
		entries:  make(map[int64]entity.StockEntry, len(s.entries)),
		users:    make(map[int64]entity.User, len(s.users)),
		lastID:   s.lastID,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.entries {
		c.entries[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

func (s *state) nextID() int64 {
	s.lastID++
	return s.lastID
}

// Store almacén en memoria. Las transacciones se serializan con un mutex y trabajan
// sobre una copia del estado que solo se publica si fn termina sin error.
type Store struct {
	mu sync.Mutex
	st *state
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{st: newState()}
}

// Run ejecuta fn dentro de una transacción.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.st.clone()
	if err := fn(reposFor(binding{tx: work})); err != nil {
		return err
	}
	s.st = work
	return nil
}

// Repos devuelve repositorios que operan directamente sobre el almacén (cada llamada es atómica).
func (s *Store) Repos() repository.Repos {
	return reposFor(binding{store: s})
}

func reposFor(b binding) repository.Repos {
	return repository.Repos{
		Products: &ProductRepo{b: b},
		Entries:  &StockEntryRepo{b: b},
		Users:    &UserRepo{b: b},
	}
}

// binding resuelve sobre qué estado opera un repositorio: el de una tx en curso o el del Store.
type binding struct {
	store *Store
	tx    *state
}

func (b binding) with(fn func(s *state) error) error {
	if b.tx != nil {
		return fn(b.tx)
	}
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	return fn(b.store.st)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
