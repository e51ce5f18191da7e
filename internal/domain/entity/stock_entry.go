package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry un lote comprado/adquirido de un producto.
// ExpiryDate nil significa no perecedero o fecha desconocida: nunca vence.
type StockEntry struct {
	ID            int64
	ProductID     int64
	Quantity      decimal.Decimal
	SubType       *string
	PurchasedDate *time.Time // solo fecha (UTC medianoche)
	ExpiryDate    *time.Time // solo fecha (UTC medianoche)
	Location      *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
