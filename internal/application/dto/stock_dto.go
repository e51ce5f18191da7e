package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// StockEntryRequest entrada para crear o reemplazar (PUT) un lote.
type StockEntryRequest struct {
	Quantity      *decimal.Decimal `json:"quantity" swaggertype:"number"`
	SubType       *string          `json:"subType"`
	PurchasedDate *Date            `json:"purchasedDate" swaggertype:"string" format:"date"`
	ExpiryDate    *Date            `json:"expiryDate" swaggertype:"string" format:"date"`
	Location      *string          `json:"location"`
	Notes         *string          `json:"notes"`
}

// Validate reglas de entrada (ozzo-validation).
func (r *StockEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Quantity, validation.NotNil, nonNegative),
		validation.Field(&r.SubType, validation.Length(0, 200)),
		validation.Field(&r.Location, validation.Length(0, 200)),
		validation.Field(&r.Notes, validation.Length(0, 1000)),
	)
}

// StockQuantityPatch entrada de PATCH /stock/{id}: solo cambia la cantidad.
type StockQuantityPatch struct {
	Quantity *decimal.Decimal `json:"quantity" swaggertype:"number"`
}

// Validate reglas de entrada (ozzo-validation).
func (r *StockQuantityPatch) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Quantity, validation.NotNil, nonNegative),
	)
}

// StockEntryResponse salida de un lote. ExpiryStatus es null si no vence dentro de la ventana.
type StockEntryResponse struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"productId"`
	Quantity      decimal.Decimal `json:"quantity" swaggertype:"number"`
	SubType       *string         `json:"subType"`
	PurchasedDate *Date           `json:"purchasedDate" swaggertype:"string" format:"date"`
	ExpiryDate    *Date           `json:"expiryDate" swaggertype:"string" format:"date"`
	Location      *string         `json:"location"`
	Notes         *string         `json:"notes"`
	ExpiryStatus  *string         `json:"expiryStatus" enums:"APPROACHING,EXPIRED"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CategoryResponse acciones recomendadas por categoría (tabla de consulta para clientes).
type CategoryResponse struct {
	Category          string `json:"category"`
	ApproachingAction string `json:"approachingAction"`
	ExpiredAction     string `json:"expiredAction"`
}
