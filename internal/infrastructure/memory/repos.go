package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/stock"
)

var (
	_ repository.ProductRepository    = (*ProductRepo)(nil)
	_ repository.StockEntryRepository = (*StockEntryRepo)(nil)
	_ repository.UserRepository       = (*UserRepo)(nil)
)

// ProductRepo productos en memoria.
type ProductRepo struct{ b binding }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.b.with(func(s *state) error {
		now := time.Now().UTC()
		p.ID = s.nextID()
		p.CreatedAt, p.UpdatedAt = now, now
		s.products[p.ID] = copyProduct(*p)
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.b.with(func(s *state) error {
		if p, ok := s.products[id]; ok {
			c := copyProduct(p)
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.b.with(func(s *state) error {
		cur, ok := s.products[p.ID]
		if !ok {
			return domain.ErrNotFound
		}
		p.CreatedAt = cur.CreatedAt
		p.UpdatedAt = time.Now().UTC()
		s.products[p.ID] = copyProduct(*p)
		return nil
	})
}

// Delete elimina el producto y sus lotes (equivalente a ON DELETE CASCADE).
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	return r.b.with(func(s *state) error {
		if _, ok := s.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.products, id)
		for eid, e := range s.entries {
			if e.ProductID == id {
				delete(s.entries, eid)
			}
		}
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context, category *entity.Category) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0)
	err := r.b.with(func(s *state) error {
		for _, p := range s.products {
			if category != nil && p.Category != *category {
				continue
			}
			c := copyProduct(p)
			list = append(list, &c)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

// StockEntryRepo lotes en memoria.
type StockEntryRepo struct{ b binding }

func (r *StockEntryRepo) Create(_ context.Context, e *entity.StockEntry) error {
	return r.b.with(func(s *state) error {
		if _, ok := s.products[e.ProductID]; !ok {
			return domain.ErrNotFound
		}
		now := time.Now().UTC()
		e.ID = s.nextID()
		e.CreatedAt, e.UpdatedAt = now, now
		s.entries[e.ID] = copyEntry(*e)
		return nil
	})
}

func (r *StockEntryRepo) GetByID(_ context.Context, id int64) (*entity.StockEntry, error) {
	var out *entity.StockEntry
	err := r.b.with(func(s *state) error {
		if e, ok := s.entries[id]; ok {
			c := copyEntry(e)
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *StockEntryRepo) Update(_ context.Context, e *entity.StockEntry) error {
	return r.b.with(func(s *state) error {
		cur, ok := s.entries[e.ID]
		if !ok {
			return domain.ErrNotFound
		}
		e.ProductID = cur.ProductID
		e.CreatedAt = cur.CreatedAt
		e.UpdatedAt = time.Now().UTC()
		s.entries[e.ID] = copyEntry(*e)
		return nil
	})
}

func (r *StockEntryRepo) Delete(_ context.Context, id int64) error {
	return r.b.with(func(s *state) error {
		if _, ok := s.entries[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.entries, id)
		return nil
	})
}

func (r *StockEntryRepo) DeleteByProduct(_ context.Context, productID int64) error {
	return r.b.with(func(s *state) error {
		for id, e := range s.entries {
			if e.ProductID == productID {
				delete(s.entries, id)
			}
		}
		return nil
	})
}

func (r *StockEntryRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.StockEntry, error) {
	return r.filter(func(e entity.StockEntry) bool { return e.ProductID == productID })
}

func (r *StockEntryRepo) ListExpiredBefore(_ context.Context, date time.Time) ([]*entity.StockEntry, error) {
	date = stock.DateOf(date)
	return r.filter(func(e entity.StockEntry) bool {
		return e.ExpiryDate != nil && stock.DateOf(*e.ExpiryDate).Before(date)
	})
}

func (r *StockEntryRepo) ListExpiringBetween(_ context.Context, from, to time.Time) ([]*entity.StockEntry, error) {
	from, to = stock.DateOf(from), stock.DateOf(to)
	return r.filter(func(e entity.StockEntry) bool {
		if e.ExpiryDate == nil {
			return false
		}
		d := stock.DateOf(*e.ExpiryDate)
		return !d.Before(from) && !d.After(to)
	})
}

func (r *StockEntryRepo) SumQuantity(_ context.Context, productID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.b.with(func(s *state) error {
		for _, e := range s.entries {
			if e.ProductID == productID {
				total = total.Add(e.Quantity)
			}
		}
		return nil
	})
	return total, err
}

func (r *StockEntryRepo) SumQuantities(_ context.Context) (map[int64]decimal.Decimal, error) {
	out := make(map[int64]decimal.Decimal)
	err := r.b.with(func(s *state) error {
		for _, e := range s.entries {
			out[e.ProductID] = out[e.ProductID].Add(e.Quantity)
		}
		return nil
	})
	return out, err
}

// filter aplica keep y ordena por vencimiento ascendente, sin fecha al final, luego por ID.
func (r *StockEntryRepo) filter(keep func(entity.StockEntry) bool) ([]*entity.StockEntry, error) {
	list := make([]*entity.StockEntry, 0)
	err := r.b.with(func(s *state) error {
		for _, e := range s.entries {
			if keep(e) {
				c := copyEntry(e)
				list = append(list, &c)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i].ExpiryDate, list[j].ExpiryDate
		switch {
		case a == nil && b == nil:
			return list[i].ID < list[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.Before(*b)
		default:
			return list[i].ID < list[j].ID
		}
	})
	return list, err
}

// UserRepo usuarios en memoria.
type UserRepo struct{ b binding }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.b.with(func(s *state) error {
		for _, existing := range s.users {
			if existing.Username == u.Username {
				return domain.ErrDuplicate
			}
		}
		u.ID = s.nextID()
		u.CreatedAt = time.Now().UTC()
		s.users[u.ID] = *u
		return nil
	})
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.b.with(func(s *state) error {
		for _, u := range s.users {
			if u.Username == username {
				c := u
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) DeleteAll(_ context.Context) error {
	return r.b.with(func(s *state) error {
		s.users = make(map[int64]entity.User)
		return nil
	})
}

func copyProduct(p entity.Product) entity.Product {
	p.Notes = cloneString(p.Notes)
	return p
}

func copyEntry(e entity.StockEntry) entity.StockEntry {
	e.SubType = cloneString(e.SubType)
	e.Location = cloneString(e.Location)
	e.Notes = cloneString(e.Notes)
	if e.PurchasedDate != nil {
		d := *e.PurchasedDate
		e.PurchasedDate = &d
	}
	if e.ExpiryDate != nil {
		d := *e.ExpiryDate
		e.ExpiryDate = &d
	}
	return e
}
