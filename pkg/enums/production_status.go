package enums

import "fmt"

// ProductionStatus describes the lifecycle state of a production run.
type ProductionStatus string

const (
	ProductionStatusStopped   ProductionStatus = "stopped"
	ProductionStatusRunning   ProductionStatus = "running"
	ProductionStatusPaused    ProductionStatus = "paused"
	ProductionStatusCompleted ProductionStatus = "completed"
)

var validProductionStatuses = []ProductionStatus{
	ProductionStatusStopped,
	ProductionStatusRunning,
	ProductionStatusPaused,
	ProductionStatusCompleted,
}

func (p ProductionStatus) String() string {
	return string(p)
}

// IsValid reports whether the value matches the canonical production status enum.
func (p ProductionStatus) IsValid() bool {
	for _, candidate := range validProductionStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductionStatus converts the raw string to ProductionStatus.
func ParseProductionStatus(value string) (ProductionStatus, error) {
	for _, candidate := range validProductionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid production status %q", value)
}
