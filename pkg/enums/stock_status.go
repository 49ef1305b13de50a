package enums

import "fmt"

// StockStatus is the derived alert level shared by stock products, materials, and tools.
// It is recomputed from quantity and alert threshold, never set by a caller.
type StockStatus string

const (
	StockStatusNormal   StockStatus = "normal"
	StockStatusLow      StockStatus = "low"
	StockStatusCritical StockStatus = "critical"
)

var validStockStatuses = []StockStatus{
	StockStatusNormal,
	StockStatusLow,
	StockStatusCritical,
}

func (s StockStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches the canonical stock status enum.
func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockStatus converts the raw string to StockStatus.
func ParseStockStatus(value string) (StockStatus, error) {
	for _, candidate := range validStockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}
