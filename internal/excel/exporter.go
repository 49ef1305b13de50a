package excel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Seb-Replay/gestion-production/internal/inventory"
)

// Entity labels used in generated filenames.
const (
	LabelStock     = "Stock"
	LabelMaterials = "Matieres"
	LabelTools     = "Outils"
)

// Column sets are the same in both directions so an exported file imports
// back through the matching validator without edits.
var (
	StockColumns = []string{
		"reference", "description", "quantity", "unit",
		"alert_threshold", "stock_location_id", "subcontractor_id",
	}
	MaterialColumns = []string{
		"lot_number", "diameter", "cases_count", "weight_kg",
		"supplier", "reception_date", "alert_threshold", "material_type_id",
	}
	ToolColumns = []string{
		"reference", "description", "quantity",
		"alert_threshold", "tool_type_id", "tool_location_id",
	}
)

// Filename names an export file for an entity on a given day.
func Filename(label string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", label, now.Format("2006-01-02"))
}

// TemplateFilename names the one-example-row template for an entity.
func TemplateFilename(label string) string {
	return fmt.Sprintf("Template_%s.xlsx", label)
}

// StockRow flattens a stock product for export.
func StockRow(d inventory.StockProductDTO) []string {
	return []string{
		d.Reference,
		d.Description,
		strconv.Itoa(d.Quantity),
		d.Unit,
		strconv.Itoa(d.AlertThreshold),
		idCell(d.StockLocationID),
		idCell(d.SubcontractorID),
	}
}

// MaterialRow flattens a material lot for export.
func MaterialRow(d inventory.MaterialDTO) []string {
	return []string{
		d.LotNumber,
		d.Diameter.String(),
		strconv.Itoa(d.CasesCount),
		d.WeightKg.String(),
		d.Supplier,
		d.ReceptionDate.Format("2006-01-02"),
		strconv.Itoa(d.AlertThreshold),
		idCell(d.MaterialTypeID),
	}
}

// ToolRow flattens a tool for export.
func ToolRow(d inventory.ToolDTO) []string {
	return []string{
		d.Reference,
		d.Description,
		strconv.Itoa(d.Quantity),
		strconv.Itoa(d.AlertThreshold),
		idCell(d.ToolTypeID),
		idCell(d.ToolLocationID),
	}
}

func idCell(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// Template example rows show operators what each column expects.
var (
	stockTemplateRow = []string{
		"REF-1024", "Axe inox 6mm", "150", "pcs", "10", "", "",
	}
	materialTemplateRow = []string{
		"LOT-2025-001", "12.50", "4", "250.000", "Aciers Perrin", "2025-08-01", "50", "",
	}
	toolTemplateRow = []string{
		"OUT-204", "Foret carbure 3mm", "12", "5", "", "",
	}
)
