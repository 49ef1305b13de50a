package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/api/validators"
	"github.com/Seb-Replay/gestion-production/internal/planning"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

func ListReferences(svc planning.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "planning service unavailable"))
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

func GetReference(svc planning.Service, logg *logger.Logger) http.HandlerFunc {
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

type createReferenceRequest struct {
	Reference      string     `json:"reference" validate:"required"`
	OrderNumber    string     `json:"order_number"`
	MaterialLot    string     `json:"material_lot"`
	MachineID      *string    `json:"machine_id,omitempty"`
	Quantity       int        `json:"quantity" validate:"min=0"`
	ProductionDate *time.Time `json:"production_date,omitempty"`
	Status         string     `json:"status"`
}

func (req createReferenceRequest) toInput() (planning.CreateReferenceInput, error) {
	machineID, err := optionalUUID(req.MachineID)
	if err != nil {
		return planning.CreateReferenceInput{}, err
	}
	input := planning.CreateReferenceInput{
		Reference:      req.Reference,
		OrderNumber:    req.OrderNumber,
		MaterialLot:    req.MaterialLot,
		MachineID:      machineID,
		Quantity:       req.Quantity,
		ProductionDate: req.ProductionDate,
	}
	if req.Status != "" {
		status, err := enums.ParseReferenceStatus(strings.TrimSpace(req.Status))
		if err != nil {
			return planning.CreateReferenceInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = status
	}
	return input, nil
}

func CreateReference(svc planning.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createReferenceRequest
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

type updateReferenceRequest struct {
	Reference      *string    `json:"reference,omitempty"`
	OrderNumber    *string    `json:"order_number,omitempty"`
	MaterialLot    *string    `json:"material_lot,omitempty"`
	MachineID      *string    `json:"machine_id,omitempty"`
	Quantity       *int       `json:"quantity,omitempty" validate:"omitempty,min=0"`
	ProductionDate *time.Time `json:"production_date,omitempty"`
	Status         *string    `json:"status,omitempty"`
}

func (req updateReferenceRequest) toInput() (planning.UpdateReferenceInput, error) {
	input := planning.UpdateReferenceInput{
		Reference:      req.Reference,
		OrderNumber:    req.OrderNumber,
		MaterialLot:    req.MaterialLot,
		Quantity:       req.Quantity,
		ProductionDate: req.ProductionDate,
	}
	if req.MachineID != nil {
		id, err := optionalUUID(req.MachineID)
		if err != nil {
			return planning.UpdateReferenceInput{}, err
		}
		input.MachineID = id
	}
	if req.Status != nil {
		status, err := enums.ParseReferenceStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			return planning.UpdateReferenceInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}
	return input, nil
}

func UpdateReference(svc planning.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateReferenceRequest
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

func DeleteReference(svc planning.Service, logg *logger.Logger) http.HandlerFunc {
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
