package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna product.ID.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
	// List lista productos ordenados por ID; category nil = todas.
	List(ctx context.Context, category *entity.Category) ([]*entity.Product, error)
}
