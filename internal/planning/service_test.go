package planning

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

func newTestService(t *testing.T) Service {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.ProductReference{}))

	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func TestCreateDefaultsToPending(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.Create(ctx, CreateReferenceInput{
		Reference:   "REF-808",
		OrderNumber: "OF-2025-090",
		MaterialLot: "LOT-12",
		Quantity:    250,
	})
	require.NoError(t, err)
	require.Equal(t, enums.ReferenceStatusPending, dto.Status)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateReferenceInput{Reference: "REF-1", Status: "archived"})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestUpdateMovesStatusAndDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.Create(ctx, CreateReferenceInput{Reference: "REF-2", Quantity: 10})
	require.NoError(t, err)

	active := enums.ReferenceStatusActive
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	machineID := uuid.New()
	updated, err := svc.Update(ctx, dto.ID, UpdateReferenceInput{
		Status:         &active,
		ProductionDate: &date,
		MachineID:      &machineID,
	})
	require.NoError(t, err)
	require.Equal(t, enums.ReferenceStatusActive, updated.Status)
	require.NotNil(t, updated.ProductionDate)
	require.NotNil(t, updated.MachineID)
	require.Equal(t, machineID, *updated.MachineID)
}

func TestDeleteUnknownReferenceIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	err := svc.Delete(ctx, uuid.New())
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
