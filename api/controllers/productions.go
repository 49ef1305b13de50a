package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/api/validators"
	"github.com/Seb-Replay/gestion-production/internal/production"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

func ListProductions(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "production service unavailable"))
			return
		}
		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetProduction(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type createProductionRequest struct {
	MachineID    string `json:"machine_id" validate:"required"`
	Cadence      int    `json:"cadence" validate:"min=0"`
	MaterialKind string `json:"material_kind" validate:"required"`
	MaterialLot  string `json:"material_lot"`
	Reference    string `json:"reference" validate:"required"`
	OrderNumber  string `json:"order_number"`
	Quantity     int    `json:"quantity" validate:"min=0"`
}

func (req createProductionRequest) toInput() (production.CreateProductionInput, error) {
	machineID, err := uuid.Parse(req.MachineID)
	if err != nil {
		return production.CreateProductionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid machine id")
	}
	kind, err := enums.ParseMaterialKind(strings.TrimSpace(req.MaterialKind))
	if err != nil {
		return production.CreateProductionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid material kind")
	}
	return production.CreateProductionInput{
		MachineID:    machineID,
		Cadence:      req.Cadence,
		MaterialKind: kind,
		MaterialLot:  req.MaterialLot,
		Reference:    req.Reference,
		OrderNumber:  req.OrderNumber,
		Quantity:     req.Quantity,
	}, nil
}

func CreateProduction(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

type updateProductionRequest struct {
	MachineID    *string `json:"machine_id,omitempty"`
	Cadence      *int    `json:"cadence,omitempty" validate:"omitempty,min=0"`
	MaterialKind *string `json:"material_kind,omitempty"`
	MaterialLot  *string `json:"material_lot,omitempty"`
	Reference    *string `json:"reference,omitempty"`
	OrderNumber  *string `json:"order_number,omitempty"`
	Quantity     *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Produced     *int    `json:"produced,omitempty" validate:"omitempty,min=0"`
	Status       *string `json:"status,omitempty"`
}

func (req updateProductionRequest) toInput() (production.UpdateProductionInput, error) {
	input := production.UpdateProductionInput{
		Cadence:     req.Cadence,
		MaterialLot: req.MaterialLot,
		Reference:   req.Reference,
		OrderNumber: req.OrderNumber,
		Quantity:    req.Quantity,
		Produced:    req.Produced,
	}
	if req.MachineID != nil {
		id, err := uuid.Parse(*req.MachineID)
		if err != nil {
			return production.UpdateProductionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid machine id")
		}
		input.MachineID = &id
	}
	if req.MaterialKind != nil {
		kind, err := enums.ParseMaterialKind(strings.TrimSpace(*req.MaterialKind))
		if err != nil {
			return production.UpdateProductionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid material kind")
		}
		input.MaterialKind = &kind
	}
	if req.Status != nil {
		status, err := enums.ParseProductionStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			return production.UpdateProductionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}
	return input, nil
}

func UpdateProduction(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateProductionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func DeleteProduction(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// ToggleProduction flips a run between running and paused.
func ToggleProduction(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Toggle(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
