package controllers

import (
	"net/http"
	"strings"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/api/validators"
	"github.com/Seb-Replay/gestion-production/internal/lookups"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

// ListLookup serves any lookup table as a flat list.
func ListLookup[T any, I any](l *lookups.Lookup[T, I], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := l.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// CreateLookup decodes an entity-specific payload and inserts the row.
func CreateLookup[T any, I any](l *lookups.Lookup[T, I], decode func(*http.Request) (I, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decode(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		row, err := l.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

// UpdateLookup decodes an entity-specific payload and replaces the row's
// editable fields.
func UpdateLookup[T any, I any](l *lookups.Lookup[T, I], decode func(*http.Request) (I, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := decode(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		row, err := l.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// DeleteLookup removes a lookup row.
func DeleteLookup[T any, I any](l *lookups.Lookup[T, I], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := l.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

type namedLookupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// DecodeNamedInput parses the payload shared by locations and type tables.
func DecodeNamedInput(r *http.Request) (lookups.NamedInput, error) {
	var payload namedLookupRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return lookups.NamedInput{}, err
	}
	return lookups.NamedInput{Name: payload.Name, Description: payload.Description}, nil
}

type machineRequest struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// DecodeMachineInput parses a machine payload.
func DecodeMachineInput(r *http.Request) (lookups.MachineInput, error) {
	var payload machineRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return lookups.MachineInput{}, err
	}
	input := lookups.MachineInput{
		Name:        payload.Name,
		Type:        payload.Type,
		Description: payload.Description,
	}
	if payload.Status != "" {
		status, err := enums.ParseMachineStatus(strings.TrimSpace(payload.Status))
		if err != nil {
			return lookups.MachineInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid machine status")
		}
		input.Status = status
	}
	return input, nil
}

type subcontractorRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty"`
	Contact   string `json:"contact"`
}

// DecodeSubcontractorInput parses a subcontractor payload.
func DecodeSubcontractorInput(r *http.Request) (lookups.SubcontractorInput, error) {
	var payload subcontractorRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return lookups.SubcontractorInput{}, err
	}
	return lookups.SubcontractorInput{
		Name:      payload.Name,
		Specialty: payload.Specialty,
		Contact:   payload.Contact,
	}, nil
}
