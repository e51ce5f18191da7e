package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de la despensa.
// TargetQuantity es la cantidad que se desea mantener; el stock real es la suma de sus StockEntry.
type Product struct {
	ID             int64
	Name           string
	Category       Category
	Unit           Unit
	TargetQuantity decimal.Decimal
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
