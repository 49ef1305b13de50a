package enums

import "fmt"

// MachineStatus describes machine availability on the shop floor.
type MachineStatus string

const (
	MachineStatusActive      MachineStatus = "active"
	MachineStatusMaintenance MachineStatus = "maintenance"
	MachineStatusInactive    MachineStatus = "inactive"
)

var validMachineStatuses = []MachineStatus{
	MachineStatusActive,
	MachineStatusMaintenance,
	MachineStatusInactive,
}

func (m MachineStatus) String() string {
	return string(m)
}

// IsValid reports whether the value matches the canonical machine status enum.
func (m MachineStatus) IsValid() bool {
	for _, candidate := range validMachineStatuses {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMachineStatus converts the raw string to MachineStatus.
func ParseMachineStatus(value string) (MachineStatus, error) {
	for _, candidate := range validMachineStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid machine status %q", value)
}
