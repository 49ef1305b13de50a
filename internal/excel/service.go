package excel

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Seb-Replay/gestion-production/internal/inventory"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/metrics"
)

// ImportReport is the API-facing outcome of one import attempt.
type ImportReport struct {
	TotalRows int      `json:"total_rows"`
	ValidRows int      `json:"valid_rows"`
	Errors    []string `json:"errors"`
	Success   bool     `json:"success"`
}

// Service moves inventory data between the store and xlsx files.
type Service struct {
	inventory inventory.Service
	metrics   *metrics.TransferMetrics
	now       func() time.Time
}

// NewService builds the transfer service. Metrics may be nil.
func NewService(inv inventory.Service, m *metrics.TransferMetrics) (*Service, error) {
	if inv == nil {
		return nil, fmt.Errorf("inventory service required")
	}
	return &Service{inventory: inv, metrics: m, now: time.Now}, nil
}

// ImportStockProducts validates and inserts stock rows from the workbook.
func (s *Service) ImportStockProducts(ctx context.Context, r io.Reader) *ImportReport {
	return runImport(ctx, s, LabelStock, r, ValidateStockProduct,
		func(ctx context.Context, input inventory.CreateStockProductInput) error {
			_, err := s.inventory.CreateStockProduct(ctx, input)
			return err
		})
}

// ImportMaterials validates and inserts material rows from the workbook.
func (s *Service) ImportMaterials(ctx context.Context, r io.Reader) *ImportReport {
	return runImport(ctx, s, LabelMaterials, r, ValidateMaterial,
		func(ctx context.Context, input inventory.CreateMaterialInput) error {
			_, err := s.inventory.CreateMaterial(ctx, input)
			return err
		})
}

// ImportTools validates and inserts tool rows from the workbook.
func (s *Service) ImportTools(ctx context.Context, r io.Reader) *ImportReport {
	return runImport(ctx, s, LabelTools, r, ValidateTool,
		func(ctx context.Context, input inventory.CreateToolInput) error {
			_, err := s.inventory.CreateTool(ctx, input)
			return err
		})
}

// runImport is the shared import path: parse, validate row by row, insert
// what survived, and report everything else with its line number.
func runImport[T any](ctx context.Context, s *Service, label string, r io.Reader, validate Validator[T], insert func(context.Context, T) error) *ImportReport {
	start := s.now()
	result := Import(r, validate)

	report := &ImportReport{
		TotalRows: result.TotalRows,
		Errors:    result.Errors,
	}
	for _, rec := range result.Records {
		if err := insert(ctx, rec.Record); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Ligne %d: insertion impossible: %v", rec.Line, err))
			continue
		}
		report.ValidRows++
	}
	if report.Errors == nil {
		report.Errors = []string{}
	}
	report.Success = report.ValidRows > 0

	s.metrics.ObserveImport(label, time.Since(start))
	s.metrics.CountRows(label, report.ValidRows, report.TotalRows-report.ValidRows)
	return report
}

// ExportStockProducts renders the current stock list as a workbook.
func (s *Service) ExportStockProducts(ctx context.Context) (string, []byte, error) {
	dtos, err := s.inventory.ListStockProducts(ctx)
	if err != nil {
		return "", nil, err
	}
	rows := make([][]string, 0, len(dtos))
	for _, d := range dtos {
		rows = append(rows, StockRow(d))
	}
	return s.export(LabelStock, StockColumns, rows)
}

// ExportMaterials renders the current material lots as a workbook.
func (s *Service) ExportMaterials(ctx context.Context) (string, []byte, error) {
	dtos, err := s.inventory.ListMaterials(ctx)
	if err != nil {
		return "", nil, err
	}
	rows := make([][]string, 0, len(dtos))
	for _, d := range dtos {
		rows = append(rows, MaterialRow(d))
	}
	return s.export(LabelMaterials, MaterialColumns, rows)
}

// ExportTools renders the current tool list as a workbook.
func (s *Service) ExportTools(ctx context.Context) (string, []byte, error) {
	dtos, err := s.inventory.ListTools(ctx)
	if err != nil {
		return "", nil, err
	}
	rows := make([][]string, 0, len(dtos))
	for _, d := range dtos {
		rows = append(rows, ToolRow(d))
	}
	return s.export(LabelTools, ToolColumns, rows)
}

func (s *Service) export(label string, columns []string, rows [][]string) (string, []byte, error) {
	content, err := BuildWorkbook(columns, rows)
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build workbook")
	}
	s.metrics.IncExport(label)
	return Filename(label, s.now()), content, nil
}

// Template returns the one-example-row workbook for the given entity label.
func (s *Service) Template(label string) (string, []byte, error) {
	var columns []string
	var example []string

	switch label {
	case LabelStock:
		columns, example = StockColumns, stockTemplateRow
	case LabelMaterials:
		columns, example = MaterialColumns, materialTemplateRow
	case LabelTools:
		columns, example = ToolColumns, toolTemplateRow
	default:
		return "", nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown template %q", label))
	}

	content, err := BuildWorkbook(columns, [][]string{example})
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build template")
	}
	return TemplateFilename(label), content, nil
}
