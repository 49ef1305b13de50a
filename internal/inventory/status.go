package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

var two = decimal.NewFromInt(2)

// DeriveStatus classifies a quantity against its alert threshold.
// Critical at or below half the threshold, low at or below the threshold,
// normal above it. A threshold of zero or less disables the low band: only
// an empty (or negative) quantity is critical.
func DeriveStatus(quantity decimal.Decimal, threshold int) enums.StockStatus {
	t := decimal.NewFromInt(int64(threshold))
	if t.Sign() <= 0 {
		if quantity.Sign() <= 0 {
			return enums.StockStatusCritical
		}
		return enums.StockStatusNormal
	}

	switch {
	case quantity.LessThanOrEqual(t.Div(two)):
		return enums.StockStatusCritical
	case quantity.LessThanOrEqual(t):
		return enums.StockStatusLow
	default:
		return enums.StockStatusNormal
	}
}

// DeriveCountStatus is DeriveStatus for unit-counted stock.
func DeriveCountStatus(quantity, threshold int) enums.StockStatus {
	return DeriveStatus(decimal.NewFromInt(int64(quantity)), threshold)
}
