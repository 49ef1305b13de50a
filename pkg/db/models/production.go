package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

// Production is a run of parts on a machine. Created stopped with nothing
// produced; start/pause toggling stamps the timing fields. Produced only moves
// through explicit edits, there is no clock advancing it.
type Production struct {
	ID           uuid.UUID              `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	MachineID    uuid.UUID              `gorm:"column:machine_id;type:uuid;not null" json:"machine_id"`
	Cadence      int                    `gorm:"column:cadence;not null;default:0" json:"cadence"`
	MaterialKind enums.MaterialKind     `gorm:"column:material_kind;not null" json:"material_kind"`
	MaterialLot  string                 `gorm:"column:material_lot;not null" json:"material_lot"`
	Reference    string                 `gorm:"column:reference;not null" json:"reference"`
	OrderNumber  string                 `gorm:"column:order_number;not null" json:"order_number"`
	Quantity     int                    `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Produced     int                    `gorm:"column:produced;not null;default:0" json:"produced"`
	StartTime    *time.Time             `gorm:"column:start_time" json:"start_time,omitempty"`
	EstimatedEnd *time.Time             `gorm:"column:estimated_end" json:"estimated_end,omitempty"`
	Status       enums.ProductionStatus `gorm:"column:status;not null;default:stopped" json:"status"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (p *Production) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
