package production

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
)

func newTestService(t *testing.T, now time.Time) (*service, *gorm.DB) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Production{}))

	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)

	impl := svc.(*service)
	impl.now = func() time.Time { return now }
	return impl, conn
}

func validInput(machineID uuid.UUID) CreateProductionInput {
	return CreateProductionInput{
		MachineID:    machineID,
		Cadence:      50,
		MaterialKind: enums.MaterialKindInox,
		MaterialLot:  "LOT-88",
		Reference:    "REF-500",
		OrderNumber:  "OF-2025-041",
		Quantity:     100,
	}
}

func TestCreateStartsStopped(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	dto, err := svc.Create(ctx, validInput(uuid.New()))
	require.NoError(t, err)

	require.Equal(t, enums.ProductionStatusStopped, dto.Status)
	require.Equal(t, 0, dto.Produced)
	require.Equal(t, 0, dto.Progress)
	require.Nil(t, dto.StartTime)
	require.Nil(t, dto.EstimatedEnd)
}

func TestCreateValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	input := validInput(uuid.Nil)
	_, err := svc.Create(ctx, input)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	input = validInput(uuid.New())
	input.MaterialKind = "bois"
	_, err = svc.Create(ctx, input)
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestToggleStartStampsTiming(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 8, 12, 8, 0, 0, 0, time.UTC)
	svc, conn := newTestService(t, now)

	dto, err := svc.Create(ctx, validInput(uuid.New()))
	require.NoError(t, err)

	started, err := svc.Toggle(ctx, dto.ID)
	require.NoError(t, err)
	require.Equal(t, enums.ProductionStatusRunning, started.Status)
	require.NotNil(t, started.StartTime)
	require.Equal(t, "08:00", *started.StartTime)

	// 100 parts at 50/h is two hours of work
	require.NotNil(t, started.EstimatedEnd)
	require.Equal(t, "10:00", *started.EstimatedEnd)

	var row models.Production
	require.NoError(t, conn.First(&row, "id = ?", dto.ID).Error)
	require.NotNil(t, row.EstimatedEnd)
	require.True(t, row.EstimatedEnd.Equal(now.Add(2*time.Hour)))
}

func TestToggleRunningPauses(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	dto, err := svc.Create(ctx, validInput(uuid.New()))
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, dto.ID)
	require.NoError(t, err)

	paused, err := svc.Toggle(ctx, dto.ID)
	require.NoError(t, err)
	require.Equal(t, enums.ProductionStatusPaused, paused.Status)

	resumed, err := svc.Toggle(ctx, dto.ID)
	require.NoError(t, err)
	require.Equal(t, enums.ProductionStatusRunning, resumed.Status)
}

func TestToggleWithoutCadenceSkipsEstimate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	input := validInput(uuid.New())
	input.Cadence = 0
	dto, err := svc.Create(ctx, input)
	require.NoError(t, err)

	started, err := svc.Toggle(ctx, dto.ID)
	require.NoError(t, err)
	require.NotNil(t, started.StartTime)
	require.Nil(t, started.EstimatedEnd)
}

func TestToggleCompletedConflicts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	dto, err := svc.Create(ctx, validInput(uuid.New()))
	require.NoError(t, err)

	done := enums.ProductionStatusCompleted
	_, err = svc.Update(ctx, dto.ID, UpdateProductionInput{Status: &done})
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, dto.ID)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeStateConflict, appErr.Code())
}

func TestUpdateKeepsProducedUnclamped(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	dto, err := svc.Create(ctx, validInput(uuid.New()))
	require.NoError(t, err)

	produced := 130
	updated, err := svc.Update(ctx, dto.ID, UpdateProductionInput{Produced: &produced})
	require.NoError(t, err)

	require.Equal(t, 130, updated.Produced)
	require.Equal(t, 100, updated.Progress)
}

func TestGetUnknownRunIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	_, err := svc.Get(ctx, uuid.New())
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
