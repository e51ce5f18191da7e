package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/stock"
)

// UseCase arma el informe de existencias y delega el render al generador.
type UseCase struct {
	store     repository.Store
	policy    stock.ExpiryPolicy
	generator StockReportGenerator
	title     string
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.Store, policy stock.ExpiryPolicy, generator StockReportGenerator, title string) *UseCase {
	return &UseCase{store: store, policy: policy, generator: generator, title: title}
}

// Build recopila los datos del informe sin generar el PDF.
func (uc *UseCase) Build(ctx context.Context) (*StockReport, error) {
	repos := uc.store.Repos()
	products, err := repos.Products.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("informe: listar productos: %w", err)
	}
	sums, err := repos.Entries.SumQuantities(ctx)
	if err != nil {
		return nil, fmt.Errorf("informe: sumar existencias: %w", err)
	}

	byID := make(map[int64]*entity.Product, len(products))
	data := &StockReport{
		Title:       uc.title,
		GeneratedAt: uc.now(),
		Today:       uc.policy.Today(),
		WindowDays:  uc.policy.WindowDays,
	}
	for _, p := range products {
		byID[p.ID] = p
		current := stock.CurrentStock(sums[p.ID])
		if stock.IsLow(current, p.TargetQuantity) {
			data.LowStock = append(data.LowStock, LowStockLine{
				ProductName: p.Name,
				Category:    string(p.Category),
				Unit:        string(p.Unit),
				Target:      p.TargetQuantity,
				Current:     current,
			})
		}
	}

	expired, err := repos.Entries.ListExpiredBefore(ctx, data.Today)
	if err != nil {
		return nil, fmt.Errorf("informe: listar vencidos: %w", err)
	}
	expiring, err := repos.Entries.ListExpiringBetween(ctx, data.Today, data.Today.AddDate(0, 0, uc.policy.WindowDays))
	if err != nil {
		return nil, fmt.Errorf("informe: listar por vencer: %w", err)
	}
	data.Expired = entryLines(expired, byID, entity.Category.ExpiredAction)
	data.Expiring = entryLines(expiring, byID, entity.Category.ApproachingAction)
	return data, nil
}

// Generate arma el informe y devuelve el PDF con su nombre de archivo.
func (uc *UseCase) Generate(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	data, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, *data)
	if err != nil {
		return nil, "", fmt.Errorf("informe: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("despensa_%s.pdf", data.Today.Format("20060102")), nil
}

func (uc *UseCase) now() time.Time {
	if uc.policy.Now != nil {
		return uc.policy.Now()
	}
	return time.Now()
}

func entryLines(entries []*entity.StockEntry, products map[int64]*entity.Product, action func(entity.Category) string) []EntryLine {
	out := make([]EntryLine, 0, len(entries))
	for _, e := range entries {
		line := EntryLine{
			ProductName: fmt.Sprintf("Producto %d", e.ProductID),
			Quantity:    e.Quantity,
			ExpiryDate:  *e.ExpiryDate,
		}
		if p, ok := products[e.ProductID]; ok {
			line.ProductName = p.Name
			line.Unit = string(p.Unit)
			line.Action = action(p.Category)
		}
		if e.Location != nil {
			line.Location = *e.Location
		}
		out = append(out, line)
	}
	return out
}
