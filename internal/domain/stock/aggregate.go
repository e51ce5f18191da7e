package stock

import "github.com/shopspring/decimal"

// CurrentStock suma las cantidades de los lotes de un producto. Sin lotes: 0.
func CurrentStock(quantities ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, quantities...)
}

// IsLow indica stock bajo: existencia actual estrictamente menor que la meta.
func IsLow(current, target decimal.Decimal) bool {
	return current.LessThan(target)
}
