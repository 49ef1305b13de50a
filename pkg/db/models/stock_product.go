package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

// StockProduct is a finished or semi-finished part held in stock.
// Status is derived from Quantity vs AlertThreshold and never written by callers.
type StockProduct struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Reference       string            `gorm:"column:reference;not null" json:"reference"`
	Description     string            `gorm:"column:description;not null" json:"description"`
	StockLocationID *uuid.UUID        `gorm:"column:stock_location_id;type:uuid" json:"stock_location_id,omitempty"`
	SubcontractorID *uuid.UUID        `gorm:"column:subcontractor_id;type:uuid" json:"subcontractor_id,omitempty"`
	Quantity        int               `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Unit            string            `gorm:"column:unit;not null;default:pcs" json:"unit"`
	AlertThreshold  int               `gorm:"column:alert_threshold;not null;default:10" json:"alert_threshold"`
	Status          enums.StockStatus `gorm:"column:status;not null;default:normal" json:"status"`
	LastUpdate      time.Time         `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (s *StockProduct) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
