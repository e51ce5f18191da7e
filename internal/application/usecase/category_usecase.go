package usecase

import (
	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// ListCategories tabla de acciones recomendadas por categoría, en el orden de entity.Categories.
func ListCategories() []dto.CategoryResponse {
	cats := entity.Categories()
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{
			Category:          string(c),
			ApproachingAction: c.ApproachingAction(),
			ExpiredAction:     c.ExpiredAction(),
		})
	}
	return out
}
