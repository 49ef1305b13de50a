package lookups

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&models.Machine{},
		&models.StockLocation{},
		&models.ToolLocation{},
		&models.MaterialType{},
		&models.ToolType{},
		&models.Subcontractor{},
	))

	svc, err := NewService(conn)
	require.NoError(t, err)
	return svc
}

func TestMachineDefaultsToActive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	machine, err := svc.Machines.Create(ctx, MachineInput{Name: "Tornos Delta 20", Type: "decolletage"})
	require.NoError(t, err)
	require.Equal(t, enums.MachineStatusActive, machine.Status)
	require.NotEqual(t, uuid.Nil, machine.ID)
}

func TestMachineRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Machines.Create(ctx, MachineInput{Name: "Citizen L32", Status: "broken"})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestNamedLookupCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.StockLocations.Create(ctx, NamedInput{Description: "sans nom"})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	loc, err := svc.StockLocations.Create(ctx, NamedInput{Name: "Etagere B3"})
	require.NoError(t, err)

	updated, err := svc.StockLocations.Update(ctx, loc.ID, NamedInput{Name: "Etagere B4", Description: "allee 2"})
	require.NoError(t, err)
	require.Equal(t, "Etagere B4", updated.Name)

	rows, err := svc.StockLocations.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, svc.StockLocations.Delete(ctx, loc.ID))
	err = svc.StockLocations.Delete(ctx, loc.ID)
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestSubcontractorFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	sub, err := svc.Subcontractors.Create(ctx, SubcontractorInput{
		Name:      "Traitements Sud",
		Specialty: "anodisation",
		Contact:   "04 78 00 00 00",
	})
	require.NoError(t, err)

	got, err := svc.Subcontractors.Get(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, "anodisation", got.Specialty)
}
