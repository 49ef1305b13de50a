package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Seb-Replay/gestion-production/internal/excel"
)

func newExcelService(t *testing.T) *excel.Service {
	t.Helper()
	svc, err := excel.NewService(newInventoryService(t), nil)
	if err != nil {
		t.Fatalf("new excel service: %v", err)
	}
	return svc
}

func multipartUpload(t *testing.T, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "import.xlsx")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestImportFileController(t *testing.T) {
	logg := testLogger()
	svc := newExcelService(t)

	t.Run("valid workbook", func(t *testing.T) {
		content, err := excel.BuildWorkbook(excel.StockColumns, [][]string{
			{"REF-10", "vis inox", "120", "pcs", "20", "", ""},
			{"REF-11", "ecrou", "4", "pcs", "10", "", ""},
		})
		if err != nil {
			t.Fatalf("build workbook: %v", err)
		}
		body, contentType := multipartUpload(t, content)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/stock-products/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		ImportFile(svc.ImportStockProducts, 8, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var envelope struct {
			Data excel.ImportReport `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !envelope.Data.Success {
			t.Fatalf("expected success, errors: %v", envelope.Data.Errors)
		}
		if envelope.Data.ValidRows != 2 {
			t.Fatalf("expected 2 valid rows, got %d", envelope.Data.ValidRows)
		}
	})

	t.Run("corrupt workbook still returns a report", func(t *testing.T) {
		body, contentType := multipartUpload(t, []byte("pas un classeur"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/stock-products/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		ImportFile(svc.ImportStockProducts, 8, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var envelope struct {
			Data excel.ImportReport `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Data.Success {
			t.Fatal("expected a failed report")
		}
		if len(envelope.Data.Errors) != 1 || !strings.Contains(envelope.Data.Errors[0], "Erreur lors de la lecture du fichier") {
			t.Fatalf("unexpected errors: %v", envelope.Data.Errors)
		}
	})

	t.Run("missing file field", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		if err := writer.WriteField("label", "Stock"); err != nil {
			t.Fatalf("write field: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("close writer: %v", err)
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/stock-products/import", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		ImportFile(svc.ImportStockProducts, 8, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExportFileController(t *testing.T) {
	logg := testLogger()
	svc := newExcelService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stock-products/export", nil)
	rec := httptest.NewRecorder()
	ExportFile(svc.ExportStockProducts, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Stock_") {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

func TestTemplateFileController(t *testing.T) {
	logg := testLogger()
	svc := newExcelService(t)

	t.Run("known label", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/materials/template", nil)
		rec := httptest.NewRecorder()
		TemplateFile(svc, excel.LabelMaterials, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Template_Matieres.xlsx") {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown/template", nil)
		rec := httptest.NewRecorder()
		TemplateFile(svc, "Inconnu", logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
