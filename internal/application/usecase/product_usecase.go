package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/stock"
)

// ProductUseCase casos de uso del catálogo. La existencia (currentStock) se calcula
// siempre a partir de los lotes; nunca se guarda en el producto.
type ProductUseCase struct {
	store repository.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List lista productos, opcionalmente filtrados por categoría.
func (uc *ProductUseCase) List(ctx context.Context, category *entity.Category) ([]dto.ProductResponse, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, *category)
	}
	repos := uc.store.Repos()
	list, err := repos.Products.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	sums, err := repos.Entries.SumQuantities(ctx)
	if err != nil {
		return nil, fmt.Errorf("sumar existencias: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p, sums[p.ID]))
	}
	return out, nil
}

// GetByID obtiene un producto con su existencia actual. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	repos := uc.store.Repos()
	p, err := repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	current, err := repos.Entries.SumQuantity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sumar existencias: %w", err)
	}
	resp := toProductResponse(p, current)
	return &resp, nil
}

// Create crea un producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p := &entity.Product{}
	applyProductRequest(p, in)
	err := uc.store.Run(ctx, func(r repository.Repos) error {
		return r.Products.Create(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	resp := toProductResponse(p, decimal.Zero)
	return &resp, nil
}

// Update reemplaza los campos editables del producto. (nil, nil) si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	var resp *dto.ProductResponse
	err := uc.store.Run(ctx, func(r repository.Repos) error {
		p, err := r.Products.GetByID(ctx, id)
		if err != nil || p == nil {
			return err
		}
		applyProductRequest(p, in)
		if err := r.Products.Update(ctx, p); err != nil {
			return err
		}
		current, err := r.Entries.SumQuantity(ctx, id)
		if err != nil {
			return err
		}
		out := toProductResponse(p, current)
		resp = &out
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return resp, nil
}

// Delete elimina el producto y todos sus lotes en una misma transacción.
// Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.store.Run(ctx, func(r repository.Repos) error {
		if err := r.Entries.DeleteByProduct(ctx, id); err != nil {
			return fmt.Errorf("eliminar lotes: %w", err)
		}
		return r.Products.Delete(ctx, id)
	})
}

// ListLowStock productos cuya existencia actual es menor que la cantidad objetivo.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	all, err := uc.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0)
	for _, p := range all {
		if stock.IsLow(p.CurrentStock, p.TargetQuantity) {
			out = append(out, p)
		}
	}
	return out, nil
}

func applyProductRequest(p *entity.Product, in dto.ProductRequest) {
	p.Name = strings.TrimSpace(in.Name)
	p.Category = in.Category
	p.Unit = in.Unit
	p.TargetQuantity = *in.TargetQuantity
	p.Notes = in.Notes
}

func toProductResponse(p *entity.Product, current decimal.Decimal) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Unit:           p.Unit,
		TargetQuantity: p.TargetQuantity,
		CurrentStock:   stock.CurrentStock(current),
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
