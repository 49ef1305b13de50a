package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/internal/excel"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

// ImportFile handles a multipart upload against one entity's importer. The
// report is returned with 200 even when no row survived; the client reads
// success from the body.
func ImportFile(run func(context.Context, io.Reader) *excel.ImportReport, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if run == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "import service unavailable"))
			return
		}

		limit := int64(maxUploadMB) << 20
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		if err := r.ParseMultipartForm(limit); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid upload"))
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file field required"))
			return
		}
		defer file.Close()

		report := run(r.Context(), file)
		responses.WriteSuccess(w, report)
	}
}

// ExportFile streams one entity's current rows as an xlsx download.
func ExportFile(run func(context.Context) (string, []byte, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if run == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "export service unavailable"))
			return
		}
		name, content, err := run(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteFile(w, name, content)
	}
}

// TemplateFile streams the documented example workbook for one entity.
func TemplateFile(svc *excel.Service, label string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "export service unavailable"))
			return
		}
		name, content, err := svc.Template(label)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteFile(w, name, content)
	}
}
