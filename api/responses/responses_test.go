package responses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
	"github.com/Seb-Replay/gestion-production/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]int{"count": 3})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope types.SuccessEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data)
}

func TestWriteError(t *testing.T) {
	logg := testLogger()

	t.Run("validation keeps the message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := pkgerrors.New(pkgerrors.CodeValidation, "reference is required")
		WriteError(context.Background(), logg, rec, err)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var envelope types.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
		require.Equal(t, "reference is required", envelope.Error.Message)
	})

	t.Run("internal hides the message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := pkgerrors.New(pkgerrors.CodeInternal, "pg connection pool exhausted")
		WriteError(context.Background(), logg, rec, err)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var envelope types.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.Equal(t, "internal server error", envelope.Error.Message)
	})

	t.Run("untyped error maps to internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(context.Background(), logg, rec, errors.New("boom"))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var envelope types.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
	})

	t.Run("state conflict is unprocessable", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := pkgerrors.New(pkgerrors.CodeStateConflict, "run already completed")
		WriteError(context.Background(), logg, rec, err)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var envelope types.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.Equal(t, "run already completed", envelope.Error.Message)
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeNotFound, "missing"))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWriteFile(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteFile(rec, "Stock_2025-08-12.xlsx", []byte{0x50, 0x4b})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "Stock_2025-08-12.xlsx")
	require.Equal(t, []byte{0x50, 0x4b}, rec.Body.Bytes())
}
