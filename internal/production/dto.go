package production

import (
	"time"

	"github.com/google/uuid"

	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

// clockFormat renders timing fields the way the floor display shows them.
const clockFormat = "15:04"

// ProductionDTO exposes a production run in API responses. Timing fields are
// rendered as wall-clock strings and progress is derived, never stored.
type ProductionDTO struct {
	ID           uuid.UUID              `json:"id"`
	MachineID    uuid.UUID              `json:"machine_id"`
	Cadence      int                    `json:"cadence"`
	MaterialKind enums.MaterialKind     `json:"material_kind"`
	MaterialLot  string                 `json:"material_lot"`
	Reference    string                 `json:"reference"`
	OrderNumber  string                 `json:"order_number"`
	Quantity     int                    `json:"quantity"`
	Produced     int                    `json:"produced"`
	Progress     int                    `json:"progress"`
	StartTime    *string                `json:"start_time,omitempty"`
	EstimatedEnd *string                `json:"estimated_end,omitempty"`
	Status       enums.ProductionStatus `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// FromModel maps the persisted run into a DTO.
func FromModel(m *models.Production) *ProductionDTO {
	if m == nil {
		return nil
	}
	return &ProductionDTO{
		ID:           m.ID,
		MachineID:    m.MachineID,
		Cadence:      m.Cadence,
		MaterialKind: m.MaterialKind,
		MaterialLot:  m.MaterialLot,
		Reference:    m.Reference,
		OrderNumber:  m.OrderNumber,
		Quantity:     m.Quantity,
		Produced:     m.Produced,
		Progress:     ProgressPercent(m.Produced, m.Quantity),
		StartTime:    formatClock(m.StartTime),
		EstimatedEnd: formatClock(m.EstimatedEnd),
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(clockFormat)
	return &s
}
