package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/report"
)

func TestGenerateStockReport(t *testing.T) {
	today := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	data := report.StockReport{
		Title:       "Despensa",
		GeneratedAt: today.Add(9 * time.Hour),
		Today:       today,
		WindowDays:  30,
		LowStock: []report.LowStockLine{
			{ProductName: "Agua", Category: "WATER", Unit: "LITERS", Target: decimal.NewFromInt(20), Current: decimal.NewFromInt(5)},
		},
		Expired: []report.EntryLine{
			{ProductName: "Atún", Unit: "CANS", Quantity: decimal.NewFromInt(2), ExpiryDate: today.AddDate(0, 0, -3), Location: "sótano", Action: "Revisar"},
		},
	}

	out, err := NewMarotoPDFGenerator().GenerateStockReport(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "3 KG", quantity("3", "KG"))
	assert.Equal(t, "3", quantity("3", ""))
}
