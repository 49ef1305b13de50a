package enums

import "fmt"

// MaterialKind is the raw-material family a production run consumes.
type MaterialKind string

const (
	MaterialKindInox     MaterialKind = "inox"
	MaterialKindTitane   MaterialKind = "titane"
	MaterialKindAcier    MaterialKind = "acier"
	MaterialKindFinemack MaterialKind = "finemack"
)

var validMaterialKinds = []MaterialKind{
	MaterialKindInox,
	MaterialKindTitane,
	MaterialKindAcier,
	MaterialKindFinemack,
}

func (m MaterialKind) String() string {
	return string(m)
}

// IsValid reports whether the value matches the canonical material kind enum.
func (m MaterialKind) IsValid() bool {
	for _, candidate := range validMaterialKinds {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMaterialKind converts the raw string to MaterialKind.
func ParseMaterialKind(value string) (MaterialKind, error) {
	for _, candidate := range validMaterialKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid material kind %q", value)
}
