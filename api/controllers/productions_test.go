package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/internal/production"
	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
)

func newProductionService(t *testing.T) production.Service {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Production{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc, err := production.NewService(production.NewRepository(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateProductionController(t *testing.T) {
	logg := testLogger()
	svc := newProductionService(t)

	t.Run("new runs start stopped", func(t *testing.T) {
		body := `{"machine_id":"` + uuid.NewString() + `","cadence":60,"material_kind":"inox","reference":"OF-100","quantity":500}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/productions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		CreateProduction(svc, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var envelope struct {
			Data production.ProductionDTO `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Data.Status != enums.ProductionStatusStopped {
			t.Fatalf("expected stopped, got %q", envelope.Data.Status)
		}
		if envelope.Data.Progress != 0 {
			t.Fatalf("expected zero progress, got %d", envelope.Data.Progress)
		}
	})

	t.Run("unknown material kind", func(t *testing.T) {
		body := `{"machine_id":"` + uuid.NewString() + `","cadence":60,"material_kind":"bois","quantity":10}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/productions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		CreateProduction(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestToggleProductionController(t *testing.T) {
	logg := testLogger()
	svc := newProductionService(t)

	created, err := svc.Create(context.Background(), production.CreateProductionInput{
		MachineID:    uuid.New(),
		Cadence:      100,
		MaterialKind: enums.MaterialKindInox,
		Reference:    "OF-200",
		Quantity:     1000,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	id := created.ID.String()

	t.Run("stopped to running", func(t *testing.T) {
		req := withRouteID(httptest.NewRequest(http.MethodPost, "/api/v1/productions/"+id+"/toggle", nil), id)
		rec := httptest.NewRecorder()
		ToggleProduction(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var envelope struct {
			Data production.ProductionDTO `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Data.Status != enums.ProductionStatusRunning {
			t.Fatalf("expected running, got %q", envelope.Data.Status)
		}
		if envelope.Data.StartTime == nil {
			t.Fatal("expected a start time once running")
		}
	})

	t.Run("completed run cannot restart", func(t *testing.T) {
		status := enums.ProductionStatusCompleted
		if _, err := svc.Update(context.Background(), created.ID, production.UpdateProductionInput{Status: &status}); err != nil {
			t.Fatalf("complete: %v", err)
		}
		req := withRouteID(httptest.NewRequest(http.MethodPost, "/api/v1/productions/"+id+"/toggle", nil), id)
		rec := httptest.NewRecorder()
		ToggleProduction(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		other := uuid.NewString()
		req := withRouteID(httptest.NewRequest(http.MethodPost, "/api/v1/productions/"+other+"/toggle", nil), other)
		rec := httptest.NewRecorder()
		ToggleProduction(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
