package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

// Machine is a shop-floor machine referenced by productions and references.
type Machine struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string              `gorm:"column:name;not null" json:"name"`
	Type        string              `gorm:"column:type" json:"type"`
	Description string              `gorm:"column:description" json:"description"`
	Status      enums.MachineStatus `gorm:"column:status;not null;default:active" json:"status"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m *Machine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
