package excel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Seb-Replay/gestion-production/internal/inventory"
)

func (r RawRow) text(key string) (string, bool) {
	v, ok := r[key]
	return v, ok && v != ""
}

func (r RawRow) integer(key string) (int, bool) {
	v, ok := r.text(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r RawRow) number(key string) (decimal.Decimal, bool) {
	v, ok := r.text(key)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// identifier parses an optional UUID column. A malformed value is treated
// like an absent one rather than failing the row.
func (r RawRow) identifier(key string) *uuid.UUID {
	v, ok := r.text(key)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func (r RawRow) date(key string) *time.Time {
	v, ok := r.text(key)
	if !ok {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

func missingField(name string) string {
	return fmt.Sprintf("champ %q manquant ou invalide", name)
}

// ValidateStockProduct checks one stock row. Mandatory: reference,
// description, quantity. Unit and alert threshold fall back to their
// defaults when absent or unreadable.
func ValidateStockProduct(row RawRow) (inventory.CreateStockProductInput, []string) {
	var errs []string
	var input inventory.CreateStockProductInput

	reference, ok := row.text("reference")
	if !ok {
		errs = append(errs, missingField("reference"))
	}
	description, ok := row.text("description")
	if !ok {
		errs = append(errs, missingField("description"))
	}
	quantity, ok := row.integer("quantity")
	if !ok {
		errs = append(errs, missingField("quantity"))
	}

	input.Reference = reference
	input.Description = description
	input.Quantity = quantity
	if unit, ok := row.text("unit"); ok {
		input.Unit = unit
	}
	if threshold, ok := row.integer("alert_threshold"); ok {
		input.AlertThreshold = &threshold
	}
	input.StockLocationID = row.identifier("stock_location_id")
	input.SubcontractorID = row.identifier("subcontractor_id")

	return input, errs
}

// ValidateMaterial checks one material row. Mandatory: lot_number, diameter,
// cases_count, weight_kg, supplier.
func ValidateMaterial(row RawRow) (inventory.CreateMaterialInput, []string) {
	var errs []string
	var input inventory.CreateMaterialInput

	lot, ok := row.text("lot_number")
	if !ok {
		errs = append(errs, missingField("lot_number"))
	}
	diameter, ok := row.number("diameter")
	if !ok {
		errs = append(errs, missingField("diameter"))
	}
	cases, ok := row.integer("cases_count")
	if !ok {
		errs = append(errs, missingField("cases_count"))
	}
	weight, ok := row.number("weight_kg")
	if !ok {
		errs = append(errs, missingField("weight_kg"))
	}
	supplier, ok := row.text("supplier")
	if !ok {
		errs = append(errs, missingField("supplier"))
	}

	input.LotNumber = lot
	input.Diameter = diameter
	input.CasesCount = cases
	input.WeightKg = weight
	input.Supplier = supplier
	if threshold, ok := row.integer("alert_threshold"); ok {
		input.AlertThreshold = &threshold
	}
	input.MaterialTypeID = row.identifier("material_type_id")
	input.ReceptionDate = row.date("reception_date")

	return input, errs
}

// ValidateTool checks one tool row. Mandatory: reference, description,
// quantity.
func ValidateTool(row RawRow) (inventory.CreateToolInput, []string) {
	var errs []string
	var input inventory.CreateToolInput

	reference, ok := row.text("reference")
	if !ok {
		errs = append(errs, missingField("reference"))
	}
	description, ok := row.text("description")
	if !ok {
		errs = append(errs, missingField("description"))
	}
	quantity, ok := row.integer("quantity")
	if !ok {
		errs = append(errs, missingField("quantity"))
	}

	input.Reference = reference
	input.Description = description
	input.Quantity = quantity
	if threshold, ok := row.integer("alert_threshold"); ok {
		input.AlertThreshold = &threshold
	}
	input.ToolTypeID = row.identifier("tool_type_id")
	input.ToolLocationID = row.identifier("tool_location_id")

	return input, errs
}
