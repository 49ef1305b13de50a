package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/internal/repo"
	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
)

// Service exposes product reference planning operations.
type Service interface {
	List(ctx context.Context) ([]ReferenceDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ReferenceDTO, error)
	Create(ctx context.Context, input CreateReferenceInput) (*ReferenceDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateReferenceInput) (*ReferenceDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository persists product references.
type Repository struct {
	References *repo.Collection[models.ProductReference]
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{References: repo.NewCollection[models.ProductReference](db)}
}

type service struct {
	repo *Repository
}

// NewService builds a planning service with the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("planning repository required")
	}
	return &service{repo: repo}, nil
}

// ReferenceDTO exposes a planned reference in API responses.
type ReferenceDTO struct {
	ID             uuid.UUID             `json:"id"`
	Reference      string                `json:"reference"`
	OrderNumber    string                `json:"order_number"`
	MaterialLot    string                `json:"material_lot"`
	MachineID      *uuid.UUID            `json:"machine_id,omitempty"`
	Quantity       int                   `json:"quantity"`
	ProductionDate *time.Time            `json:"production_date,omitempty"`
	Status         enums.ReferenceStatus `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// CreateReferenceInput captures creation-time planning data.
type CreateReferenceInput struct {
	Reference      string
	OrderNumber    string
	MaterialLot    string
	MachineID      *uuid.UUID
	Quantity       int
	ProductionDate *time.Time
	Status         enums.ReferenceStatus
}

// UpdateReferenceInput captures the mutable planning fields.
type UpdateReferenceInput struct {
	Reference      *string
	OrderNumber    *string
	MaterialLot    *string
	MachineID      *uuid.UUID
	Quantity       *int
	ProductionDate *time.Time
	Status         *enums.ReferenceStatus
}

// FromModel maps the persisted reference into a DTO.
func FromModel(m *models.ProductReference) *ReferenceDTO {
	if m == nil {
		return nil
	}
	return &ReferenceDTO{
		ID:             m.ID,
		Reference:      m.Reference,
		OrderNumber:    m.OrderNumber,
		MaterialLot:    m.MaterialLot,
		MachineID:      m.MachineID,
		Quantity:       m.Quantity,
		ProductionDate: m.ProductionDate,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (s *service) List(ctx context.Context) ([]ReferenceDTO, error) {
	rows, err := s.repo.References.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list references")
	}
	out := make([]ReferenceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ReferenceDTO, error) {
	row, err := s.repo.References.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(row), nil
}

func (s *service) Create(ctx context.Context, input CreateReferenceInput) (*ReferenceDTO, error) {
	if input.Reference == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reference is required")
	}
	status := input.Status
	if status == "" {
		status = enums.ReferenceStatusPending
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", status))
	}

	row := &models.ProductReference{
		Reference:      input.Reference,
		OrderNumber:    input.OrderNumber,
		MaterialLot:    input.MaterialLot,
		MachineID:      input.MachineID,
		Quantity:       input.Quantity,
		ProductionDate: input.ProductionDate,
		Status:         status,
	}
	created, err := s.repo.References.Insert(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create reference")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateReferenceInput) (*ReferenceDTO, error) {
	row, err := s.repo.References.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Reference != nil {
		row.Reference = *input.Reference
	}
	if input.OrderNumber != nil {
		row.OrderNumber = *input.OrderNumber
	}
	if input.MaterialLot != nil {
		row.MaterialLot = *input.MaterialLot
	}
	if input.MachineID != nil {
		row.MachineID = input.MachineID
	}
	if input.Quantity != nil {
		row.Quantity = *input.Quantity
	}
	if input.ProductionDate != nil {
		row.ProductionDate = input.ProductionDate
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", *input.Status))
		}
		row.Status = *input.Status
	}

	updated, err := s.repo.References.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update reference")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.References.Delete(ctx, id)
}
