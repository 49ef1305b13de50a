package controllers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/api/validators"
	"github.com/Seb-Replay/gestion-production/internal/inventory"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

func ListMaterials(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}
		rows, err := svc.ListMaterials(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetMaterial(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.GetMaterial(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type createMaterialRequest struct {
	MaterialTypeID *string         `json:"material_type_id,omitempty"`
	LotNumber      string          `json:"lot_number" validate:"required"`
	Diameter       decimal.Decimal `json:"diameter"`
	CasesCount     int             `json:"cases_count" validate:"min=0"`
	WeightKg       decimal.Decimal `json:"weight_kg"`
	Supplier       string          `json:"supplier" validate:"required"`
	ReceptionDate  *time.Time      `json:"reception_date,omitempty"`
	AlertThreshold *int            `json:"alert_threshold,omitempty" validate:"omitempty,min=0"`
}

func (req createMaterialRequest) toInput() (inventory.CreateMaterialInput, error) {
	typeID, err := optionalUUID(req.MaterialTypeID)
	if err != nil {
		return inventory.CreateMaterialInput{}, err
	}
	return inventory.CreateMaterialInput{
		MaterialTypeID: typeID,
		LotNumber:      req.LotNumber,
		Diameter:       req.Diameter,
		CasesCount:     req.CasesCount,
		WeightKg:       req.WeightKg,
		Supplier:       req.Supplier,
		ReceptionDate:  req.ReceptionDate,
		AlertThreshold: req.AlertThreshold,
	}, nil
}

func CreateMaterial(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createMaterialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.CreateMaterial(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

type updateMaterialRequest struct {
	MaterialTypeID *string          `json:"material_type_id,omitempty"`
	LotNumber      *string          `json:"lot_number,omitempty"`
	Diameter       *decimal.Decimal `json:"diameter,omitempty"`
	CasesCount     *int             `json:"cases_count,omitempty" validate:"omitempty,min=0"`
	WeightKg       *decimal.Decimal `json:"weight_kg,omitempty"`
	Supplier       *string          `json:"supplier,omitempty"`
	ReceptionDate  *time.Time       `json:"reception_date,omitempty"`
	AlertThreshold *int             `json:"alert_threshold,omitempty" validate:"omitempty,min=0"`
}

func (req updateMaterialRequest) toInput() (inventory.UpdateMaterialInput, error) {
	input := inventory.UpdateMaterialInput{
		LotNumber:      req.LotNumber,
		Diameter:       req.Diameter,
		CasesCount:     req.CasesCount,
		WeightKg:       req.WeightKg,
		Supplier:       req.Supplier,
		ReceptionDate:  req.ReceptionDate,
		AlertThreshold: req.AlertThreshold,
	}
	if req.MaterialTypeID != nil {
		id, err := optionalUUID(req.MaterialTypeID)
		if err != nil {
			return inventory.UpdateMaterialInput{}, err
		}
		input.MaterialTypeID = id
	}
	return input, nil
}

func UpdateMaterial(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateMaterialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.UpdateMaterial(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func DeleteMaterial(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteMaterial(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
