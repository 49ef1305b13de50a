package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
)

const (
	DefaultStockUnit         = "pcs"
	DefaultStockThreshold    = 10
	DefaultMaterialThreshold = 50
	DefaultToolThreshold     = 5
)

// Service exposes stock product, material, and tool operations. Status is
// recomputed server-side on every write; incoming status values are ignored.
type Service interface {
	ListStockProducts(ctx context.Context) ([]StockProductDTO, error)
	GetStockProduct(ctx context.Context, id uuid.UUID) (*StockProductDTO, error)
	CreateStockProduct(ctx context.Context, input CreateStockProductInput) (*StockProductDTO, error)
	UpdateStockProduct(ctx context.Context, id uuid.UUID, input UpdateStockProductInput) (*StockProductDTO, error)
	DeleteStockProduct(ctx context.Context, id uuid.UUID) error

	ListMaterials(ctx context.Context) ([]MaterialDTO, error)
	GetMaterial(ctx context.Context, id uuid.UUID) (*MaterialDTO, error)
	CreateMaterial(ctx context.Context, input CreateMaterialInput) (*MaterialDTO, error)
	UpdateMaterial(ctx context.Context, id uuid.UUID, input UpdateMaterialInput) (*MaterialDTO, error)
	DeleteMaterial(ctx context.Context, id uuid.UUID) error

	ListTools(ctx context.Context) ([]ToolDTO, error)
	GetTool(ctx context.Context, id uuid.UUID) (*ToolDTO, error)
	CreateTool(ctx context.Context, input CreateToolInput) (*ToolDTO, error)
	UpdateTool(ctx context.Context, id uuid.UUID, input UpdateToolInput) (*ToolDTO, error)
	DeleteTool(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService builds an inventory service with the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{repo: repo}, nil
}

// CreateStockProductInput captures creation-time stock product data.
type CreateStockProductInput struct {
	Reference       string
	Description     string
	StockLocationID *uuid.UUID
	SubcontractorID *uuid.UUID
	Quantity        int
	Unit            string
	AlertThreshold  *int
}

// UpdateStockProductInput captures the mutable stock product fields.
type UpdateStockProductInput struct {
	Reference       *string
	Description     *string
	StockLocationID *uuid.UUID
	SubcontractorID *uuid.UUID
	Quantity        *int
	Unit            *string
	AlertThreshold  *int
}

// CreateMaterialInput captures creation-time material lot data.
type CreateMaterialInput struct {
	MaterialTypeID *uuid.UUID
	LotNumber      string
	Diameter       decimal.Decimal
	CasesCount     int
	WeightKg       decimal.Decimal
	Supplier       string
	ReceptionDate  *time.Time
	AlertThreshold *int
}

// UpdateMaterialInput captures the mutable material fields.
type UpdateMaterialInput struct {
	MaterialTypeID *uuid.UUID
	LotNumber      *string
	Diameter       *decimal.Decimal
	CasesCount     *int
	WeightKg       *decimal.Decimal
	Supplier       *string
	ReceptionDate  *time.Time
	AlertThreshold *int
}

// CreateToolInput captures creation-time tool data.
type CreateToolInput struct {
	ToolTypeID     *uuid.UUID
	ToolLocationID *uuid.UUID
	Reference      string
	Description    string
	Quantity       int
	AlertThreshold *int
}

// UpdateToolInput captures the mutable tool fields.
type UpdateToolInput struct {
	ToolTypeID     *uuid.UUID
	ToolLocationID *uuid.UUID
	Reference      *string
	Description    *string
	Quantity       *int
	AlertThreshold *int
}

func (s *service) ListStockProducts(ctx context.Context) ([]StockProductDTO, error) {
	rows, err := s.repo.Stock.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stock products")
	}
	out := make([]StockProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *StockProductFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) GetStockProduct(ctx context.Context, id uuid.UUID) (*StockProductDTO, error) {
	row, err := s.repo.Stock.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return StockProductFromModel(row), nil
}

func (s *service) CreateStockProduct(ctx context.Context, input CreateStockProductInput) (*StockProductDTO, error) {
	if input.Reference == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reference is required")
	}

	unit := input.Unit
	if unit == "" {
		unit = DefaultStockUnit
	}
	threshold := DefaultStockThreshold
	if input.AlertThreshold != nil {
		threshold = *input.AlertThreshold
	}

	row := &models.StockProduct{
		Reference:       input.Reference,
		Description:     input.Description,
		StockLocationID: input.StockLocationID,
		SubcontractorID: input.SubcontractorID,
		Quantity:        input.Quantity,
		Unit:            unit,
		AlertThreshold:  threshold,
		Status:          DeriveCountStatus(input.Quantity, threshold),
		LastUpdate:      time.Now().UTC(),
	}
	created, err := s.repo.Stock.Insert(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create stock product")
	}
	return StockProductFromModel(created), nil
}

func (s *service) UpdateStockProduct(ctx context.Context, id uuid.UUID, input UpdateStockProductInput) (*StockProductDTO, error) {
	row, err := s.repo.Stock.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Reference != nil {
		row.Reference = *input.Reference
	}
	if input.Description != nil {
		row.Description = *input.Description
	}
	if input.StockLocationID != nil {
		row.StockLocationID = input.StockLocationID
	}
	if input.SubcontractorID != nil {
		row.SubcontractorID = input.SubcontractorID
	}
	if input.Quantity != nil {
		row.Quantity = *input.Quantity
	}
	if input.Unit != nil && *input.Unit != "" {
		row.Unit = *input.Unit
	}
	if input.AlertThreshold != nil {
		row.AlertThreshold = *input.AlertThreshold
	}
	row.Status = DeriveCountStatus(row.Quantity, row.AlertThreshold)
	row.LastUpdate = time.Now().UTC()

	updated, err := s.repo.Stock.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update stock product")
	}
	return StockProductFromModel(updated), nil
}

func (s *service) DeleteStockProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.Stock.Delete(ctx, id)
}

func (s *service) ListMaterials(ctx context.Context) ([]MaterialDTO, error) {
	rows, err := s.repo.Materials.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list materials")
	}
	out := make([]MaterialDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *MaterialFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) GetMaterial(ctx context.Context, id uuid.UUID) (*MaterialDTO, error) {
	row, err := s.repo.Materials.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return MaterialFromModel(row), nil
}

func (s *service) CreateMaterial(ctx context.Context, input CreateMaterialInput) (*MaterialDTO, error) {
	if input.LotNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "lot number is required")
	}

	threshold := DefaultMaterialThreshold
	if input.AlertThreshold != nil {
		threshold = *input.AlertThreshold
	}
	reception := time.Now().UTC()
	if input.ReceptionDate != nil {
		reception = *input.ReceptionDate
	}

	row := &models.Material{
		MaterialTypeID: input.MaterialTypeID,
		LotNumber:      input.LotNumber,
		Diameter:       input.Diameter,
		CasesCount:     input.CasesCount,
		WeightKg:       input.WeightKg,
		Supplier:       input.Supplier,
		ReceptionDate:  reception,
		AlertThreshold: threshold,
		Status:         DeriveStatus(input.WeightKg, threshold),
	}
	created, err := s.repo.Materials.Insert(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create material")
	}
	return MaterialFromModel(created), nil
}

func (s *service) UpdateMaterial(ctx context.Context, id uuid.UUID, input UpdateMaterialInput) (*MaterialDTO, error) {
	row, err := s.repo.Materials.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MaterialTypeID != nil {
		row.MaterialTypeID = input.MaterialTypeID
	}
	if input.LotNumber != nil {
		row.LotNumber = *input.LotNumber
	}
	if input.Diameter != nil {
		row.Diameter = *input.Diameter
	}
	if input.CasesCount != nil {
		row.CasesCount = *input.CasesCount
	}
	if input.WeightKg != nil {
		row.WeightKg = *input.WeightKg
	}
	if input.Supplier != nil {
		row.Supplier = *input.Supplier
	}
	if input.ReceptionDate != nil {
		row.ReceptionDate = *input.ReceptionDate
	}
	if input.AlertThreshold != nil {
		row.AlertThreshold = *input.AlertThreshold
	}
	row.Status = DeriveStatus(row.WeightKg, row.AlertThreshold)

	updated, err := s.repo.Materials.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update material")
	}
	return MaterialFromModel(updated), nil
}

func (s *service) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return s.repo.Materials.Delete(ctx, id)
}

func (s *service) ListTools(ctx context.Context) ([]ToolDTO, error) {
	rows, err := s.repo.Tools.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tools")
	}
	out := make([]ToolDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *ToolFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) GetTool(ctx context.Context, id uuid.UUID) (*ToolDTO, error) {
	row, err := s.repo.Tools.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToolFromModel(row), nil
}

func (s *service) CreateTool(ctx context.Context, input CreateToolInput) (*ToolDTO, error) {
	if input.Reference == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reference is required")
	}

	threshold := DefaultToolThreshold
	if input.AlertThreshold != nil {
		threshold = *input.AlertThreshold
	}

	row := &models.Tool{
		ToolTypeID:     input.ToolTypeID,
		ToolLocationID: input.ToolLocationID,
		Reference:      input.Reference,
		Description:    input.Description,
		Quantity:       input.Quantity,
		AlertThreshold: threshold,
		Status:         DeriveCountStatus(input.Quantity, threshold),
	}
	created, err := s.repo.Tools.Insert(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create tool")
	}
	return ToolFromModel(created), nil
}

func (s *service) UpdateTool(ctx context.Context, id uuid.UUID, input UpdateToolInput) (*ToolDTO, error) {
	row, err := s.repo.Tools.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ToolTypeID != nil {
		row.ToolTypeID = input.ToolTypeID
	}
	if input.ToolLocationID != nil {
		row.ToolLocationID = input.ToolLocationID
	}
	if input.Reference != nil {
		row.Reference = *input.Reference
	}
	if input.Description != nil {
		row.Description = *input.Description
	}
	if input.Quantity != nil {
		row.Quantity = *input.Quantity
	}
	if input.AlertThreshold != nil {
		row.AlertThreshold = *input.AlertThreshold
	}
	row.Status = DeriveCountStatus(row.Quantity, row.AlertThreshold)

	updated, err := s.repo.Tools.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update tool")
	}
	return ToolFromModel(updated), nil
}

func (s *service) DeleteTool(ctx context.Context, id uuid.UUID) error {
	return s.repo.Tools.Delete(ctx, id)
}
