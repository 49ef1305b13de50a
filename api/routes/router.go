package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Seb-Replay/gestion-production/api/controllers"
	"github.com/Seb-Replay/gestion-production/api/middleware"
	"github.com/Seb-Replay/gestion-production/internal/excel"
	"github.com/Seb-Replay/gestion-production/internal/inventory"
	"github.com/Seb-Replay/gestion-production/internal/lookups"
	"github.com/Seb-Replay/gestion-production/internal/planning"
	"github.com/Seb-Replay/gestion-production/internal/production"
	"github.com/Seb-Replay/gestion-production/pkg/config"
	"github.com/Seb-Replay/gestion-production/pkg/db"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

// Services bundles everything the router exposes over HTTP.
type Services struct {
	Inventory  inventory.Service
	Production production.Service
	Planning   planning.Service
	Lookups    *lookups.Service
	Excel      *excel.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	client *db.Client,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, client, logg))
	})

	r.Handle("/metrics", promhttp.Handler())

	maxUpload := cfg.Import.MaxUploadMB

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", controllers.Dashboard(svcs.Inventory, svcs.Production, svcs.Planning, svcs.Lookups, logg))

		r.Route("/stock-products", func(r chi.Router) {
			r.Get("/", controllers.ListStockProducts(svcs.Inventory, logg))
			r.Post("/", controllers.CreateStockProduct(svcs.Inventory, logg))
			r.Get("/export", controllers.ExportFile(svcs.Excel.ExportStockProducts, logg))
			r.Get("/template", controllers.TemplateFile(svcs.Excel, excel.LabelStock, logg))
			r.Post("/import", controllers.ImportFile(svcs.Excel.ImportStockProducts, maxUpload, logg))
			r.Get("/{id}", controllers.GetStockProduct(svcs.Inventory, logg))
			r.Patch("/{id}", controllers.UpdateStockProduct(svcs.Inventory, logg))
			r.Delete("/{id}", controllers.DeleteStockProduct(svcs.Inventory, logg))
		})

		r.Route("/materials", func(r chi.Router) {
			r.Get("/", controllers.ListMaterials(svcs.Inventory, logg))
			r.Post("/", controllers.CreateMaterial(svcs.Inventory, logg))
			r.Get("/export", controllers.ExportFile(svcs.Excel.ExportMaterials, logg))
			r.Get("/template", controllers.TemplateFile(svcs.Excel, excel.LabelMaterials, logg))
			r.Post("/import", controllers.ImportFile(svcs.Excel.ImportMaterials, maxUpload, logg))
			r.Get("/{id}", controllers.GetMaterial(svcs.Inventory, logg))
			r.Patch("/{id}", controllers.UpdateMaterial(svcs.Inventory, logg))
			r.Delete("/{id}", controllers.DeleteMaterial(svcs.Inventory, logg))
		})

		r.Route("/tools", func(r chi.Router) {
			r.Get("/", controllers.ListTools(svcs.Inventory, logg))
			r.Post("/", controllers.CreateTool(svcs.Inventory, logg))
			r.Get("/export", controllers.ExportFile(svcs.Excel.ExportTools, logg))
			r.Get("/template", controllers.TemplateFile(svcs.Excel, excel.LabelTools, logg))
			r.Post("/import", controllers.ImportFile(svcs.Excel.ImportTools, maxUpload, logg))
			r.Get("/{id}", controllers.GetTool(svcs.Inventory, logg))
			r.Patch("/{id}", controllers.UpdateTool(svcs.Inventory, logg))
			r.Delete("/{id}", controllers.DeleteTool(svcs.Inventory, logg))
		})

		r.Route("/productions", func(r chi.Router) {
			r.Get("/", controllers.ListProductions(svcs.Production, logg))
			r.Post("/", controllers.CreateProduction(svcs.Production, logg))
			r.Get("/{id}", controllers.GetProduction(svcs.Production, logg))
			r.Patch("/{id}", controllers.UpdateProduction(svcs.Production, logg))
			r.Delete("/{id}", controllers.DeleteProduction(svcs.Production, logg))
			r.Post("/{id}/toggle", controllers.ToggleProduction(svcs.Production, logg))
		})

		r.Route("/references", func(r chi.Router) {
			r.Get("/", controllers.ListReferences(svcs.Planning, logg))
			r.Post("/", controllers.CreateReference(svcs.Planning, logg))
			r.Get("/{id}", controllers.GetReference(svcs.Planning, logg))
			r.Patch("/{id}", controllers.UpdateReference(svcs.Planning, logg))
			r.Delete("/{id}", controllers.DeleteReference(svcs.Planning, logg))
		})

		r.Route("/machines", func(r chi.Router) {
			r.Get("/", controllers.ListLookup(svcs.Lookups.Machines, logg))
			r.Post("/", controllers.CreateLookup(svcs.Lookups.Machines, controllers.DecodeMachineInput, logg))
			r.Patch("/{id}", controllers.UpdateLookup(svcs.Lookups.Machines, controllers.DecodeMachineInput, logg))
			r.Delete("/{id}", controllers.DeleteLookup(svcs.Lookups.Machines, logg))
		})

		r.Route("/stock-locations", func(r chi.Router) {
			r.Get("/", controllers.ListLookup(svcs.Lookups.StockLocations, logg))
			r.Post("/", controllers.CreateLookup(svcs.Lookups.StockLocations, controllers.DecodeNamedInput, logg))
			r.Patch("/{id}", controllers.UpdateLookup(svcs.Lookups.StockLocations, controllers.DecodeNamedInput, logg))
			r.Delete("/{id}", controllers.DeleteLookup(svcs.Lookups.StockLocations, logg))
		})

		r.Route("/tool-locations", func(r chi.Router) {
			r.Get("/", controllers.ListLookup(svcs.Lookups.ToolLocations, logg))
			r.Post("/", controllers.CreateLookup(svcs.Lookups.ToolLocations, controllers.DecodeNamedInput, logg))
			r.Patch("/{id}", controllers.UpdateLookup(svcs.Lookups.ToolLocations, controllers.DecodeNamedInput, logg))
			r.Delete("/{id}", controllers.DeleteLookup(svcs.Lookups.ToolLocations, logg))
		})

		r.Route("/material-types", func(r chi.Router) {
			r.Get("/", controllers.ListLookup(svcs.Lookups.MaterialTypes, logg))
			r.Post("/", controllers.CreateLookup(svcs.Lookups.MaterialTypes, controllers.DecodeNamedInput, logg))
			r.Patch("/{id}", controllers.UpdateLookup(svcs.Lookups.MaterialTypes, controllers.DecodeNamedInput, logg))
			r.Delete("/{id}", controllers.DeleteLookup(svcs.Lookups.MaterialTypes, logg))
		})

		r.Route("/tool-types", func(r chi.Router) {
			r.Get("/", controllers.ListLookup(svcs.Lookups.ToolTypes, logg))
			r.Post("/", controllers.CreateLookup(svcs.Lookups.ToolTypes, controllers.DecodeNamedInput, logg))
			r.Patch("/{id}", controllers.UpdateLookup(svcs.Lookups.ToolTypes, controllers.DecodeNamedInput, logg))
			r.Delete("/{id}", controllers.DeleteLookup(svcs.Lookups.ToolTypes, logg))
		})

		r.Route("/subcontractors", func(r chi.Router) {
			r.Get("/", controllers.ListLookup(svcs.Lookups.Subcontractors, logg))
			r.Post("/", controllers.CreateLookup(svcs.Lookups.Subcontractors, controllers.DecodeSubcontractorInput, logg))
			r.Patch("/{id}", controllers.UpdateLookup(svcs.Lookups.Subcontractors, controllers.DecodeSubcontractorInput, logg))
			r.Delete("/{id}", controllers.DeleteLookup(svcs.Lookups.Subcontractors, logg))
		})
	})

	return r
}
