package enums

import "fmt"

// ReferenceStatus describes the planning state of a product reference.
type ReferenceStatus string

const (
	ReferenceStatusPending   ReferenceStatus = "pending"
	ReferenceStatusActive    ReferenceStatus = "active"
	ReferenceStatusCompleted ReferenceStatus = "completed"
)

var validReferenceStatuses = []ReferenceStatus{
	ReferenceStatusPending,
	ReferenceStatusActive,
	ReferenceStatusCompleted,
}

func (r ReferenceStatus) String() string {
	return string(r)
}

// IsValid reports whether the value matches the canonical reference status enum.
func (r ReferenceStatus) IsValid() bool {
	for _, candidate := range validReferenceStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReferenceStatus converts the raw string to ReferenceStatus.
func ParseReferenceStatus(value string) (ReferenceStatus, error) {
	for _, candidate := range validReferenceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid reference status %q", value)
}
