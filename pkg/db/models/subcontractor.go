package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcontractor is an external shop that stock products can be routed through.
type Subcontractor struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Specialty string    `gorm:"column:specialty" json:"specialty"`
	Contact   string    `gorm:"column:contact" json:"contact"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (s *Subcontractor) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
