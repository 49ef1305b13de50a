package excel

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/internal/inventory"
	"github.com/Seb-Replay/gestion-production/pkg/db/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&models.StockProduct{},
		&models.Material{},
		&models.Tool{},
	))
	inv, err := inventory.NewService(inventory.NewRepository(conn))
	require.NoError(t, err)

	svc, err := NewService(inv, nil)
	require.NoError(t, err)
	return svc
}

func workbook(t *testing.T, headers []string, rows [][]string) *bytes.Reader {
	t.Helper()
	content, err := BuildWorkbook(headers, rows)
	require.NoError(t, err)
	return bytes.NewReader(content)
}

func TestImportStockProducts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	file := workbook(t, StockColumns, [][]string{
		{"REF-1", "axe 6mm", "40", "pcs", "10", "", ""},
		{"REF-2", "bague laiton", "8", "", "", "", ""},
	})

	report := svc.ImportStockProducts(ctx, file)
	require.True(t, report.Success)
	require.Equal(t, 2, report.TotalRows)
	require.Equal(t, 2, report.ValidRows)
	require.Empty(t, report.Errors)

	rows, err := svc.inventory.ListStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestImportReportsRowErrorsWithLineNumbers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	file := workbook(t, MaterialColumns, [][]string{
		{"LOT-1", "12.5", "4", "120.000", "Aciers Perrin", "", "", ""},
		{"LOT-2", "8.0", "2", "60.000", "", "", "", ""},
	})

	report := svc.ImportMaterials(ctx, file)
	require.True(t, report.Success)
	require.Equal(t, 2, report.TotalRows)
	require.Equal(t, 1, report.ValidRows)
	require.Len(t, report.Errors, 1)
	require.Contains(t, report.Errors[0], "Ligne 3")
	require.Contains(t, report.Errors[0], "supplier")
}

func TestImportRowCanCollectMultipleErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	file := workbook(t, ToolColumns, [][]string{
		{"", "", "beaucoup", "", "", ""},
	})

	report := svc.ImportTools(ctx, file)
	require.False(t, report.Success)
	require.Equal(t, 1, report.TotalRows)
	require.Equal(t, 0, report.ValidRows)
	require.Len(t, report.Errors, 3)
	for _, e := range report.Errors {
		require.True(t, strings.HasPrefix(e, "Ligne 2:"), "unexpected prefix in %q", e)
	}
}

func TestImportCorruptFileFailsWithSingleError(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	report := svc.ImportStockProducts(ctx, bytes.NewReader([]byte("pas un classeur xlsx")))
	require.False(t, report.Success)
	require.Equal(t, 0, report.TotalRows)
	require.Equal(t, 0, report.ValidRows)
	require.Len(t, report.Errors, 1)
	require.Contains(t, report.Errors[0], "Erreur lors de la lecture du fichier")
}

func TestExportThenImportRoundTrips(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, ref := range []string{"REF-10", "REF-11", "REF-12"} {
		_, err := svc.inventory.CreateStockProduct(ctx, inventory.CreateStockProductInput{
			Reference:   ref,
			Description: "piece tournee",
			Quantity:    25,
		})
		require.NoError(t, err)
	}

	name, content, err := svc.ExportStockProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, Filename(LabelStock, time.Now()), name)

	result := Import(bytes.NewReader(content), ValidateStockProduct)
	require.True(t, result.Success)
	require.Equal(t, 3, result.TotalRows)
	require.Equal(t, 3, result.ValidRows)
	require.Empty(t, result.Errors)
}

func TestTemplatesImportCleanly(t *testing.T) {
	svc := newTestService(t)

	name, content, err := svc.Template(LabelMaterials)
	require.NoError(t, err)
	require.Equal(t, "Template_Matieres.xlsx", name)

	result := Import(bytes.NewReader(content), ValidateMaterial)
	require.True(t, result.Success)
	require.Equal(t, 1, result.ValidRows)

	_, _, err = svc.Template("Inconnu")
	require.Error(t, err)
}
