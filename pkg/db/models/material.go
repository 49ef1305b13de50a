package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

// Material is a raw-material lot received from a supplier.
// Status compares the remaining weight against the alert threshold.
type Material struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	MaterialTypeID *uuid.UUID        `gorm:"column:material_type_id;type:uuid" json:"material_type_id,omitempty"`
	LotNumber      string            `gorm:"column:lot_number;not null" json:"lot_number"`
	Diameter       decimal.Decimal   `gorm:"column:diameter;type:numeric(8,2);not null" json:"diameter"`
	CasesCount     int               `gorm:"column:cases_count;not null;default:0" json:"cases_count"`
	WeightKg       decimal.Decimal   `gorm:"column:weight_kg;type:numeric(10,3);not null" json:"weight_kg"`
	Supplier       string            `gorm:"column:supplier;not null" json:"supplier"`
	ReceptionDate  time.Time         `gorm:"column:reception_date;autoCreateTime" json:"reception_date"`
	AlertThreshold int               `gorm:"column:alert_threshold;not null;default:50" json:"alert_threshold"`
	Status         enums.StockStatus `gorm:"column:status;not null;default:normal" json:"status"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
