package controllers

import (
	"net/http"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/api/validators"
	"github.com/Seb-Replay/gestion-production/internal/inventory"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

func ListTools(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}
		rows, err := svc.ListTools(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetTool(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.GetTool(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type createToolRequest struct {
	ToolTypeID     *string `json:"tool_type_id,omitempty"`
	ToolLocationID *string `json:"tool_location_id,omitempty"`
	Reference      string  `json:"reference" validate:"required"`
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity" validate:"min=0"`
	AlertThreshold *int    `json:"alert_threshold,omitempty" validate:"omitempty,min=0"`
}

func (req createToolRequest) toInput() (inventory.CreateToolInput, error) {
	typeID, err := optionalUUID(req.ToolTypeID)
	if err != nil {
		return inventory.CreateToolInput{}, err
	}
	locationID, err := optionalUUID(req.ToolLocationID)
	if err != nil {
		return inventory.CreateToolInput{}, err
	}
	return inventory.CreateToolInput{
		ToolTypeID:     typeID,
		ToolLocationID: locationID,
		Reference:      req.Reference,
		Description:    req.Description,
		Quantity:       req.Quantity,
		AlertThreshold: req.AlertThreshold,
	}, nil
}

func CreateTool(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createToolRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.CreateTool(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

type updateToolRequest struct {
	ToolTypeID     *string `json:"tool_type_id,omitempty"`
	ToolLocationID *string `json:"tool_location_id,omitempty"`
	Reference      *string `json:"reference,omitempty"`
	Description    *string `json:"description,omitempty"`
	Quantity       *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	AlertThreshold *int    `json:"alert_threshold,omitempty" validate:"omitempty,min=0"`
}

func (req updateToolRequest) toInput() (inventory.UpdateToolInput, error) {
	input := inventory.UpdateToolInput{
		Reference:      req.Reference,
		Description:    req.Description,
		Quantity:       req.Quantity,
		AlertThreshold: req.AlertThreshold,
	}
	if req.ToolTypeID != nil {
		id, err := optionalUUID(req.ToolTypeID)
		if err != nil {
			return inventory.UpdateToolInput{}, err
		}
		input.ToolTypeID = id
	}
	if req.ToolLocationID != nil {
		id, err := optionalUUID(req.ToolLocationID)
		if err != nil {
			return inventory.UpdateToolInput{}, err
		}
		input.ToolLocationID = id
	}
	return input, nil
}

func UpdateTool(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateToolRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.UpdateTool(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func DeleteTool(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteTool(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
