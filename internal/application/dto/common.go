package dto

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

func init() {
	// Cantidades como números JSON (no strings).
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse salida de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

var (
	errNegative = errors.New("must not be negative")
	errBlank    = errors.New("cannot be blank")
)

// nonNegative regla ozzo para decimal.Decimal o *decimal.Decimal; nil pasa (usar NotNil aparte).
var nonNegative = validation.By(func(value interface{}) error {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		d = *v
	default:
		return nil
	}
	if d.IsNegative() {
		return errNegative
	}
	return nil
})

// notBlank rechaza strings compuestos solo por espacios.
var notBlank = validation.By(func(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}
	if s != "" && strings.TrimSpace(s) == "" {
		return errBlank
	}
	return nil
})
