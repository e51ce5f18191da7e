package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestDate_JSON(t *testing.T) {
	var req StockEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":2.5,"expiryDate":"2027-01-31","purchasedDate":null}`), &req))
	require.NotNil(t, req.ExpiryDate)
	assert.Nil(t, req.PurchasedDate)
	assert.Equal(t, time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC), *req.ExpiryDate.TimePtr())
	assert.True(t, req.Quantity.Equal(decimal.RequireFromString("2.5")))

	err := json.Unmarshal([]byte(`{"expiryDate":"31/01/2027"}`), &req)
	assert.Error(t, err)
}

func TestStockEntryResponse_JSON(t *testing.T) {
	exp := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	status := "APPROACHING"
	out, err := json.Marshal(StockEntryResponse{
		ID: 1, ProductID: 2, Quantity: decimal.RequireFromString("3.50"),
		ExpiryDate: NewDate(&exp), ExpiryStatus: &status,
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "2026-11-01", m["expiryDate"])
	assert.Nil(t, m["purchasedDate"])
	assert.EqualValues(t, 3.5, m["quantity"], "decimal como número")
	assert.Equal(t, "APPROACHING", m["expiryStatus"])
}

func TestProductRequest_Validate(t *testing.T) {
	ok := ProductRequest{Name: "Agua", Category: entity.CategoryWater, Unit: entity.UnitLiters, TargetQuantity: decPtr("20")}
	assert.NoError(t, ok.Validate())

	cases := map[string]ProductRequest{
		"sin nombre":        {Category: entity.CategoryWater, Unit: entity.UnitLiters, TargetQuantity: decPtr("1")},
		"nombre en blanco":  {Name: "   ", Category: entity.CategoryWater, Unit: entity.UnitLiters, TargetQuantity: decPtr("1")},
		"categoría inválida": {Name: "x", Category: "SNACKS", Unit: entity.UnitLiters, TargetQuantity: decPtr("1")},
		"unidad inválida":   {Name: "x", Category: entity.CategoryWater, Unit: "BARRELS", TargetQuantity: decPtr("1")},
		"sin objetivo":      {Name: "x", Category: entity.CategoryWater, Unit: entity.UnitLiters},
		"objetivo negativo": {Name: "x", Category: entity.CategoryWater, Unit: entity.UnitLiters, TargetQuantity: decPtr("-1")},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, req.Validate())
		})
	}
}

func TestStockRequests_Validate(t *testing.T) {
	assert.NoError(t, (&StockEntryRequest{Quantity: decPtr("0")}).Validate())
	assert.Error(t, (&StockEntryRequest{}).Validate())
	assert.Error(t, (&StockEntryRequest{Quantity: decPtr("-0.5")}).Validate())
	assert.NoError(t, (&StockQuantityPatch{Quantity: decPtr("4")}).Validate())
	assert.Error(t, (&StockQuantityPatch{}).Validate())
}
