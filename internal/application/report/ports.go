package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockReportGenerator puerto para generar el PDF del informe de existencias.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReport) ([]byte, error)
}

// StockReport datos del informe: productos bajo objetivo y lotes vencidos/por vencer.
type StockReport struct {
	Title       string
	GeneratedAt time.Time
	Today       time.Time
	WindowDays  int
	LowStock    []LowStockLine
	Expired     []EntryLine
	Expiring    []EntryLine
}

// LowStockLine un producto con existencia menor al objetivo.
type LowStockLine struct {
	ProductName string
	Category    string
	Unit        string
	Target      decimal.Decimal
	Current     decimal.Decimal
}

// Missing cantidad que falta para llegar al objetivo.
func (l LowStockLine) Missing() decimal.Decimal {
	return l.Target.Sub(l.Current)
}

// EntryLine un lote con su acción recomendada según la categoría del producto.
type EntryLine struct {
	ProductName string
	Unit        string
	Quantity    decimal.Decimal
	ExpiryDate  time.Time
	Location    string
	Action      string
}
