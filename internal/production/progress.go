package production

import "math"

// ProgressPercent reports completion of a run as a whole percentage.
// A run with no target quantity reports zero. Overproduction caps the
// displayed value at 100 even though the produced count itself is kept.
func ProgressPercent(produced, quantity int) int {
	if quantity <= 0 {
		return 0
	}
	pct := int(math.Round(float64(produced) / float64(quantity) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
