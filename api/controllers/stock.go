package controllers

import (
	"net/http"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/api/validators"
	"github.com/Seb-Replay/gestion-production/internal/inventory"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

// ListStockProducts returns all stock products, newest first.
func ListStockProducts(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}
		rows, err := svc.ListStockProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetStockProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.GetStockProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type createStockProductRequest struct {
	Reference       string  `json:"reference" validate:"required"`
	Description     string  `json:"description"`
	StockLocationID *string `json:"stock_location_id,omitempty"`
	SubcontractorID *string `json:"subcontractor_id,omitempty"`
	Quantity        int     `json:"quantity" validate:"min=0"`
	Unit            string  `json:"unit"`
	AlertThreshold  *int    `json:"alert_threshold,omitempty" validate:"omitempty,min=0"`
}

func (req createStockProductRequest) toInput() (inventory.CreateStockProductInput, error) {
	locationID, err := optionalUUID(req.StockLocationID)
	if err != nil {
		return inventory.CreateStockProductInput{}, err
	}
	subcontractorID, err := optionalUUID(req.SubcontractorID)
	if err != nil {
		return inventory.CreateStockProductInput{}, err
	}
	return inventory.CreateStockProductInput{
		Reference:       req.Reference,
		Description:     req.Description,
		StockLocationID: locationID,
		SubcontractorID: subcontractorID,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		AlertThreshold:  req.AlertThreshold,
	}, nil
}

func CreateStockProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createStockProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.CreateStockProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

type updateStockProductRequest struct {
	Reference       *string `json:"reference,omitempty"`
	Description     *string `json:"description,omitempty"`
	StockLocationID *string `json:"stock_location_id,omitempty"`
	SubcontractorID *string `json:"subcontractor_id,omitempty"`
	Quantity        *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Unit            *string `json:"unit,omitempty"`
	AlertThreshold  *int    `json:"alert_threshold,omitempty" validate:"omitempty,min=0"`
}

func (req updateStockProductRequest) toInput() (inventory.UpdateStockProductInput, error) {
	input := inventory.UpdateStockProductInput{
		Reference:      req.Reference,
		Description:    req.Description,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		AlertThreshold: req.AlertThreshold,
	}
	if req.StockLocationID != nil {
		id, err := optionalUUID(req.StockLocationID)
		if err != nil {
			return inventory.UpdateStockProductInput{}, err
		}
		input.StockLocationID = id
	}
	if req.SubcontractorID != nil {
		id, err := optionalUUID(req.SubcontractorID)
		if err != nil {
			return inventory.UpdateStockProductInput{}, err
		}
		input.SubcontractorID = id
	}
	return input, nil
}

func UpdateStockProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateStockProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.UpdateStockProduct(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func DeleteStockProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteStockProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
