package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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
	require.NoError(t, conn.AutoMigrate(
		&models.StockProduct{},
		&models.Material{},
		&models.Tool{},
	))
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func TestCreateStockProductAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.CreateStockProduct(ctx, CreateStockProductInput{
		Reference:   "REF-100",
		Description: "axe 6mm",
		Quantity:    40,
	})
	require.NoError(t, err)

	require.Equal(t, "pcs", dto.Unit)
	require.Equal(t, 10, dto.AlertThreshold)
	require.Equal(t, enums.StockStatusNormal, dto.Status)
	require.False(t, dto.LastUpdate.IsZero())
}

func TestCreateStockProductRequiresReference(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateStockProduct(ctx, CreateStockProductInput{Quantity: 5})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestUpdateStockProductRecomputesStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateStockProduct(ctx, CreateStockProductInput{
		Reference: "REF-101",
		Quantity:  100,
	})
	require.NoError(t, err)
	require.Equal(t, enums.StockStatusNormal, created.Status)

	qty := 4
	updated, err := svc.UpdateStockProduct(ctx, created.ID, UpdateStockProductInput{Quantity: &qty})
	require.NoError(t, err)
	require.Equal(t, enums.StockStatusCritical, updated.Status)
	require.Equal(t, "REF-101", updated.Reference)

	threshold := 3
	updated, err = svc.UpdateStockProduct(ctx, created.ID, UpdateStockProductInput{AlertThreshold: &threshold})
	require.NoError(t, err)
	require.Equal(t, enums.StockStatusLow, updated.Status)
}

func TestMaterialStatusFollowsWeight(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.CreateMaterial(ctx, CreateMaterialInput{
		LotNumber: "LOT-2025-77",
		Diameter:  decimal.RequireFromString("12.50"),
		WeightKg:  decimal.RequireFromString("20.000"),
		Supplier:  "Aciers Perrin",
	})
	require.NoError(t, err)
	require.Equal(t, 50, dto.AlertThreshold)
	require.Equal(t, enums.StockStatusCritical, dto.Status)

	weight := decimal.RequireFromString("40.000")
	updated, err := svc.UpdateMaterial(ctx, dto.ID, UpdateMaterialInput{WeightKg: &weight})
	require.NoError(t, err)
	require.Equal(t, enums.StockStatusLow, updated.Status)

	weight = decimal.RequireFromString("120.000")
	updated, err = svc.UpdateMaterial(ctx, dto.ID, UpdateMaterialInput{WeightKg: &weight})
	require.NoError(t, err)
	require.Equal(t, enums.StockStatusNormal, updated.Status)
}

func TestToolDefaultsAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.CreateTool(ctx, CreateToolInput{
		Reference:   "OUT-12",
		Description: "foret carbure 3mm",
		Quantity:    3,
	})
	require.NoError(t, err)
	require.Equal(t, 5, dto.AlertThreshold)
	require.Equal(t, enums.StockStatusLow, dto.Status)

	require.NoError(t, svc.DeleteTool(ctx, dto.ID))

	err = svc.DeleteTool(ctx, dto.ID)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestListStockProductsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.GetStockProduct(ctx, uuid.New())
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	for _, ref := range []string{"A", "B", "C"} {
		_, err := svc.CreateStockProduct(ctx, CreateStockProductInput{Reference: ref, Quantity: 1})
		require.NoError(t, err)
	}

	rows, err := svc.ListStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
}
