package lookups

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/internal/repo"
	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
)

// NamedInput covers the simple name/description lookup tables.
type NamedInput struct {
	Name        string
	Description string
}

// MachineInput captures machine fields. Unlike stock statuses, machine status
// is caller-set; there is nothing to derive it from.
type MachineInput struct {
	Name        string
	Type        string
	Description string
	Status      enums.MachineStatus
}

// SubcontractorInput captures external shop fields.
type SubcontractorInput struct {
	Name      string
	Specialty string
	Contact   string
}

// Lookup is a CRUD surface over one lookup table. Rows are returned as-is;
// lookup tables carry nothing that needs masking.
type Lookup[T any, I any] struct {
	coll  *repo.Collection[T]
	apply func(*T, I) error
}

// List returns all rows, newest first.
func (l *Lookup[T, I]) List(ctx context.Context) ([]T, error) {
	return l.coll.List(ctx)
}

// Get loads one row by ID.
func (l *Lookup[T, I]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return l.coll.Get(ctx, id)
}

// Create inserts a row built from the input.
func (l *Lookup[T, I]) Create(ctx context.Context, input I) (*T, error) {
	var row T
	if err := l.apply(&row, input); err != nil {
		return nil, err
	}
	created, err := l.coll.Insert(ctx, &row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create lookup row")
	}
	return created, nil
}

// Update replaces the editable fields of an existing row.
func (l *Lookup[T, I]) Update(ctx context.Context, id uuid.UUID, input I) (*T, error) {
	row, err := l.coll.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := l.apply(row, input); err != nil {
		return nil, err
	}
	updated, err := l.coll.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update lookup row")
	}
	return updated, nil
}

// Delete removes a row by ID.
func (l *Lookup[T, I]) Delete(ctx context.Context, id uuid.UUID) error {
	return l.coll.Delete(ctx, id)
}

// Service groups the lookup tables backing the dashboard dropdowns.
type Service struct {
	Machines       *Lookup[models.Machine, MachineInput]
	StockLocations *Lookup[models.StockLocation, NamedInput]
	ToolLocations  *Lookup[models.ToolLocation, NamedInput]
	MaterialTypes  *Lookup[models.MaterialType, NamedInput]
	ToolTypes      *Lookup[models.ToolType, NamedInput]
	Subcontractors *Lookup[models.Subcontractor, SubcontractorInput]
}

// NewService builds lookup services over the provided GORM DB.
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db required")
	}
	return &Service{
		Machines: &Lookup[models.Machine, MachineInput]{
			coll: repo.NewCollection[models.Machine](db),
			apply: func(m *models.Machine, in MachineInput) error {
				if in.Name == "" {
					return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
				}
				status := in.Status
				if status == "" {
					status = enums.MachineStatusActive
				}
				if !status.IsValid() {
					return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid machine status %q", status))
				}
				m.Name = in.Name
				m.Type = in.Type
				m.Description = in.Description
				m.Status = status
				return nil
			},
		},
		StockLocations: &Lookup[models.StockLocation, NamedInput]{
			coll: repo.NewCollection[models.StockLocation](db),
			apply: func(m *models.StockLocation, in NamedInput) error {
				if in.Name == "" {
					return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
				}
				m.Name = in.Name
				m.Description = in.Description
				return nil
			},
		},
		ToolLocations: &Lookup[models.ToolLocation, NamedInput]{
			coll: repo.NewCollection[models.ToolLocation](db),
			apply: func(m *models.ToolLocation, in NamedInput) error {
				if in.Name == "" {
					return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
				}
				m.Name = in.Name
				m.Description = in.Description
				return nil
			},
		},
		MaterialTypes: &Lookup[models.MaterialType, NamedInput]{
			coll: repo.NewCollection[models.MaterialType](db),
			apply: func(m *models.MaterialType, in NamedInput) error {
				if in.Name == "" {
					return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
				}
				m.Name = in.Name
				m.Description = in.Description
				return nil
			},
		},
		ToolTypes: &Lookup[models.ToolType, NamedInput]{
			coll: repo.NewCollection[models.ToolType](db),
			apply: func(m *models.ToolType, in NamedInput) error {
				if in.Name == "" {
					return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
				}
				m.Name = in.Name
				m.Description = in.Description
				return nil
			},
		},
		Subcontractors: &Lookup[models.Subcontractor, SubcontractorInput]{
			coll: repo.NewCollection[models.Subcontractor](db),
			apply: func(m *models.Subcontractor, in SubcontractorInput) error {
				if in.Name == "" {
					return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
				}
				m.Name = in.Name
				m.Specialty = in.Specialty
				m.Contact = in.Contact
				return nil
			},
		},
	}, nil
}
