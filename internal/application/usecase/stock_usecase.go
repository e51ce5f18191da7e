package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/stock"
)

// StockUseCase casos de uso de lotes y vistas de vencimiento.
// expiryStatus se calcula con policy en cada respuesta, nunca se persiste.
type StockUseCase struct {
	store  repository.Store
	policy stock.ExpiryPolicy
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(store repository.Store, policy stock.ExpiryPolicy) *StockUseCase {
	return &StockUseCase{store: store, policy: policy}
}

// Policy política de vencimiento en uso.
func (uc *StockUseCase) Policy() stock.ExpiryPolicy {
	return uc.policy
}

// ListByProduct lotes del producto ordenados por vencimiento (sin fecha al final).
// domain.ErrNotFound si el producto no existe.
func (uc *StockUseCase) ListByProduct(ctx context.Context, productID int64) ([]dto.StockEntryResponse, error) {
	repos := uc.store.Repos()
	p, err := repos.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	list, err := repos.Entries.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("listar lotes: %w", err)
	}
	return uc.toResponses(list), nil
}

// Create registra un lote para el producto. domain.ErrNotFound si el producto no existe.
func (uc *StockUseCase) Create(ctx context.Context, productID int64, in dto.StockEntryRequest) (*dto.StockEntryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	e := &entity.StockEntry{ProductID: productID}
	applyStockRequest(e, in)
	err := uc.store.Run(ctx, func(r repository.Repos) error {
		p, err := r.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		return r.Entries.Create(ctx, e)
	})
	if err != nil {
		return nil, fmt.Errorf("crear lote: %w", err)
	}
	resp := uc.toResponse(e)
	return &resp, nil
}

// UpdateQuantity cambia solo la cantidad del lote.
func (uc *StockUseCase) UpdateQuantity(ctx context.Context, id int64, in dto.StockQuantityPatch) (*dto.StockEntryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.mutate(ctx, id, func(e *entity.StockEntry) {
		e.Quantity = *in.Quantity
	})
}

// Replace reemplaza todos los campos editables del lote (el producto no cambia).
func (uc *StockUseCase) Replace(ctx context.Context, id int64, in dto.StockEntryRequest) (*dto.StockEntryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.mutate(ctx, id, func(e *entity.StockEntry) {
		applyStockRequest(e, in)
	})
}

// Delete elimina un lote. domain.ErrNotFound si no existe.
func (uc *StockUseCase) Delete(ctx context.Context, id int64) error {
	return uc.store.Run(ctx, func(r repository.Repos) error {
		return r.Entries.Delete(ctx, id)
	})
}

// ListExpired lotes con fecha de vencimiento anterior a hoy.
func (uc *StockUseCase) ListExpired(ctx context.Context) ([]dto.StockEntryResponse, error) {
	list, err := uc.store.Repos().Entries.ListExpiredBefore(ctx, uc.policy.Today())
	if err != nil {
		return nil, fmt.Errorf("listar vencidos: %w", err)
	}
	return uc.toResponses(list), nil
}

// ListExpiring lotes que vencen entre hoy y hoy+days (ambos inclusive); excluye los ya vencidos.
func (uc *StockUseCase) ListExpiring(ctx context.Context, days int) ([]dto.StockEntryResponse, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days no puede ser negativo", domain.ErrInvalidInput)
	}
	today := uc.policy.Today()
	list, err := uc.store.Repos().Entries.ListExpiringBetween(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("listar por vencer: %w", err)
	}
	return uc.toResponses(list), nil
}

func (uc *StockUseCase) mutate(ctx context.Context, id int64, apply func(e *entity.StockEntry)) (*dto.StockEntryResponse, error) {
	var resp *dto.StockEntryResponse
	err := uc.store.Run(ctx, func(r repository.Repos) error {
		e, err := r.Entries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrNotFound
		}
		apply(e)
		if err := r.Entries.Update(ctx, e); err != nil {
			return err
		}
		out := uc.toResponse(e)
		resp = &out
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("actualizar lote: %w", err)
	}
	return resp, nil
}

func applyStockRequest(e *entity.StockEntry, in dto.StockEntryRequest) {
	e.Quantity = *in.Quantity
	e.SubType = in.SubType
	e.PurchasedDate = in.PurchasedDate.TimePtr()
	e.ExpiryDate = in.ExpiryDate.TimePtr()
	e.Location = in.Location
	e.Notes = in.Notes
}

func (uc *StockUseCase) toResponses(list []*entity.StockEntry) []dto.StockEntryResponse {
	out := make([]dto.StockEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, uc.toResponse(e))
	}
	return out
}

func (uc *StockUseCase) toResponse(e *entity.StockEntry) dto.StockEntryResponse {
	resp := dto.StockEntryResponse{
		ID:            e.ID,
		ProductID:     e.ProductID,
		Quantity:      e.Quantity,
		SubType:       e.SubType,
		PurchasedDate: dto.NewDate(e.PurchasedDate),
		ExpiryDate:    dto.NewDate(e.ExpiryDate),
		Location:      e.Location,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if status := uc.policy.Status(e.ExpiryDate); status != stock.ExpiryNone {
		s := string(status)
		resp.ExpiryStatus = &s
	}
	return resp
}
