package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// ProductRequest entrada para crear o reemplazar un producto.
type ProductRequest struct {
	Name           string           `json:"name"`
	Category       entity.Category  `json:"category"`
	Unit           entity.Unit      `json:"unit"`
	TargetQuantity *decimal.Decimal `json:"targetQuantity" swaggertype:"number"`
	Notes          *string          `json:"notes"`
}

// Validate reglas de entrada (ozzo-validation).
func (r *ProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, notBlank, validation.Length(1, 200)),
		validation.Field(&r.Category, validation.Required, validation.In(categoryValues()...)),
		validation.Field(&r.Unit, validation.Required, validation.In(unitValues()...)),
		validation.Field(&r.TargetQuantity, validation.NotNil, nonNegative),
		validation.Field(&r.Notes, validation.Length(0, 1000)),
	)
}

// ProductResponse salida de un producto con su existencia actual.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Category       entity.Category `json:"category"`
	Unit           entity.Unit     `json:"unit"`
	TargetQuantity decimal.Decimal `json:"targetQuantity" swaggertype:"number"`
	CurrentStock   decimal.Decimal `json:"currentStock" swaggertype:"number"`
	Notes          *string         `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func categoryValues() []interface{} {
	cats := entity.Categories()
	out := make([]interface{}, 0, len(cats))
	for _, c := range cats {
		out = append(out, c)
	}
	return out
}

func unitValues() []interface{} {
	units := entity.Units()
	out := make([]interface{}, 0, len(units))
	for _, u := range units {
		out = append(out, u)
	}
	return out
}
