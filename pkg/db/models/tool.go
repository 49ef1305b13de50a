package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

// Tool is a cutting tool or fixture tracked by quantity.
type Tool struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ToolTypeID     *uuid.UUID        `gorm:"column:tool_type_id;type:uuid" json:"tool_type_id,omitempty"`
	ToolLocationID *uuid.UUID        `gorm:"column:tool_location_id;type:uuid" json:"tool_location_id,omitempty"`
	Reference      string            `gorm:"column:reference;not null" json:"reference"`
	Description    string            `gorm:"column:description;not null" json:"description"`
	Quantity       int               `gorm:"column:quantity;not null;default:0" json:"quantity"`
	AlertThreshold int               `gorm:"column:alert_threshold;not null;default:5" json:"alert_threshold"`
	Status         enums.StockStatus `gorm:"column:status;not null;default:normal" json:"status"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (t *Tool) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
