package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

// ProductReference is a planning record tying a part reference to an order
// number and a target machine. It overlaps with Production fields but is
// entered independently; no foreign key links the two.
type ProductReference struct {
	ID             uuid.UUID             `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Reference      string                `gorm:"column:reference;not null" json:"reference"`
	OrderNumber    string                `gorm:"column:order_number;not null" json:"order_number"`
	MaterialLot    string                `gorm:"column:material_lot;not null" json:"material_lot"`
	MachineID      *uuid.UUID            `gorm:"column:machine_id;type:uuid" json:"machine_id,omitempty"`
	Quantity       int                   `gorm:"column:quantity;not null;default:0" json:"quantity"`
	ProductionDate *time.Time            `gorm:"column:production_date" json:"production_date,omitempty"`
	Status         enums.ReferenceStatus `gorm:"column:status;not null;default:pending" json:"status"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (p *ProductReference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
