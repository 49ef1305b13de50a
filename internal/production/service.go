package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
)

// Service exposes production run operations. Toggle drives the run state
// machine; a completed run can no longer be toggled.
type Service interface {
	List(ctx context.Context) ([]ProductionDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductionDTO, error)
	Create(ctx context.Context, input CreateProductionInput) (*ProductionDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductionInput) (*ProductionDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Toggle(ctx context.Context, id uuid.UUID) (*ProductionDTO, error)
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// NewService builds a production service with the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("production repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// CreateProductionInput captures creation-time run data. Runs always start
// stopped with nothing produced.
type CreateProductionInput struct {
	MachineID    uuid.UUID
	Cadence      int
	MaterialKind enums.MaterialKind
	MaterialLot  string
	Reference    string
	OrderNumber  string
	Quantity     int
}

// UpdateProductionInput captures the mutable run fields. Produced moves only
// through explicit edits here, the server never advances it on a clock.
type UpdateProductionInput struct {
	MachineID    *uuid.UUID
	Cadence      *int
	MaterialKind *enums.MaterialKind
	MaterialLot  *string
	Reference    *string
	OrderNumber  *string
	Quantity     *int
	Produced     *int
	Status       *enums.ProductionStatus
}

func (s *service) List(ctx context.Context) ([]ProductionDTO, error) {
	rows, err := s.repo.Runs.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list productions")
	}
	out := make([]ProductionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductionDTO, error) {
	row, err := s.repo.Runs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(row), nil
}

func (s *service) Create(ctx context.Context, input CreateProductionInput) (*ProductionDTO, error) {
	if input.MachineID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "machine is required")
	}
	if !input.MaterialKind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid material kind %q", input.MaterialKind))
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if input.Cadence < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cadence must not be negative")
	}

	row := &models.Production{
		MachineID:    input.MachineID,
		Cadence:      input.Cadence,
		MaterialKind: input.MaterialKind,
		MaterialLot:  input.MaterialLot,
		Reference:    input.Reference,
		OrderNumber:  input.OrderNumber,
		Quantity:     input.Quantity,
		Produced:     0,
		Status:       enums.ProductionStatusStopped,
	}
	created, err := s.repo.Runs.Insert(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create production")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductionInput) (*ProductionDTO, error) {
	row, err := s.repo.Runs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MachineID != nil {
		if *input.MachineID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "machine is required")
		}
		row.MachineID = *input.MachineID
	}
	if input.Cadence != nil {
		if *input.Cadence < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cadence must not be negative")
		}
		row.Cadence = *input.Cadence
	}
	if input.MaterialKind != nil {
		if !input.MaterialKind.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid material kind %q", *input.MaterialKind))
		}
		row.MaterialKind = *input.MaterialKind
	}
	if input.MaterialLot != nil {
		row.MaterialLot = *input.MaterialLot
	}
	if input.Reference != nil {
		row.Reference = *input.Reference
	}
	if input.OrderNumber != nil {
		row.OrderNumber = *input.OrderNumber
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
		}
		row.Quantity = *input.Quantity
	}
	if input.Produced != nil {
		if *input.Produced < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "produced must not be negative")
		}
		row.Produced = *input.Produced
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", *input.Status))
		}
		row.Status = *input.Status
	}

	updated, err := s.repo.Runs.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update production")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Runs.Delete(ctx, id)
}

// Toggle flips a run between running and paused. Starting a run stamps the
// start time and projects the end from cadence and remaining quantity.
func (s *service) Toggle(ctx context.Context, id uuid.UUID) (*ProductionDTO, error) {
	row, err := s.repo.Runs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch row.Status {
	case enums.ProductionStatusRunning:
		row.Status = enums.ProductionStatusPaused

	case enums.ProductionStatusStopped, enums.ProductionStatusPaused:
		now := s.now().UTC()
		row.Status = enums.ProductionStatusRunning
		row.StartTime = &now
		row.EstimatedEnd = estimateEnd(now, row.Quantity, row.Produced, row.Cadence)

	case enums.ProductionStatusCompleted:
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "production is completed")

	default:
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("production in unknown state %q", row.Status))
	}

	updated, err := s.repo.Runs.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "toggle production")
	}
	return FromModel(updated), nil
}

// estimateEnd projects the finish time from the hourly cadence. Without a
// cadence there is nothing to project.
func estimateEnd(from time.Time, quantity, produced, cadence int) *time.Time {
	if cadence <= 0 {
		return nil
	}
	remaining := quantity - produced
	if remaining < 0 {
		remaining = 0
	}
	end := from.Add(time.Duration(float64(remaining) / float64(cadence) * float64(time.Hour)))
	return &end
}
