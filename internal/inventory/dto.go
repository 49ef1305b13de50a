package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

// StockProductDTO exposes a stock product row in API responses.
type StockProductDTO struct {
	ID              uuid.UUID         `json:"id"`
	Reference       string            `json:"reference"`
	Description     string            `json:"description"`
	StockLocationID *uuid.UUID        `json:"stock_location_id,omitempty"`
	SubcontractorID *uuid.UUID        `json:"subcontractor_id,omitempty"`
	Quantity        int               `json:"quantity"`
	Unit            string            `json:"unit"`
	AlertThreshold  int               `json:"alert_threshold"`
	Status          enums.StockStatus `json:"status"`
	LastUpdate      time.Time         `json:"last_update"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// MaterialDTO exposes a raw-material lot in API responses.
type MaterialDTO struct {
	ID             uuid.UUID         `json:"id"`
	MaterialTypeID *uuid.UUID        `json:"material_type_id,omitempty"`
	LotNumber      string            `json:"lot_number"`
	Diameter       decimal.Decimal   `json:"diameter"`
	CasesCount     int               `json:"cases_count"`
	WeightKg       decimal.Decimal   `json:"weight_kg"`
	Supplier       string            `json:"supplier"`
	ReceptionDate  time.Time         `json:"reception_date"`
	AlertThreshold int               `json:"alert_threshold"`
	Status         enums.StockStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ToolDTO exposes a tool row in API responses.
type ToolDTO struct {
	ID             uuid.UUID         `json:"id"`
	ToolTypeID     *uuid.UUID        `json:"tool_type_id,omitempty"`
	ToolLocationID *uuid.UUID        `json:"tool_location_id,omitempty"`
	Reference      string            `json:"reference"`
	Description    string            `json:"description"`
	Quantity       int               `json:"quantity"`
	AlertThreshold int               `json:"alert_threshold"`
	Status         enums.StockStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// StockProductFromModel maps the persisted stock product into a DTO.
func StockProductFromModel(m *models.StockProduct) *StockProductDTO {
	if m == nil {
		return nil
	}
	return &StockProductDTO{
		ID:              m.ID,
		Reference:       m.Reference,
		Description:     m.Description,
		StockLocationID: m.StockLocationID,
		SubcontractorID: m.SubcontractorID,
		Quantity:        m.Quantity,
		Unit:            m.Unit,
		AlertThreshold:  m.AlertThreshold,
		Status:          m.Status,
		LastUpdate:      m.LastUpdate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// MaterialFromModel maps the persisted material lot into a DTO.
func MaterialFromModel(m *models.Material) *MaterialDTO {
	if m == nil {
		return nil
	}
	return &MaterialDTO{
		ID:             m.ID,
		MaterialTypeID: m.MaterialTypeID,
		LotNumber:      m.LotNumber,
		Diameter:       m.Diameter,
		CasesCount:     m.CasesCount,
		WeightKg:       m.WeightKg,
		Supplier:       m.Supplier,
		ReceptionDate:  m.ReceptionDate,
		AlertThreshold: m.AlertThreshold,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToolFromModel maps the persisted tool into a DTO.
func ToolFromModel(m *models.Tool) *ToolDTO {
	if m == nil {
		return nil
	}
	return &ToolDTO{
		ID:             m.ID,
		ToolTypeID:     m.ToolTypeID,
		ToolLocationID: m.ToolLocationID,
		Reference:      m.Reference,
		Description:    m.Description,
		Quantity:       m.Quantity,
		AlertThreshold: m.AlertThreshold,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
