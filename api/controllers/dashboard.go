package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/internal/inventory"
	"github.com/Seb-Replay/gestion-production/internal/lookups"
	"github.com/Seb-Replay/gestion-production/internal/planning"
	"github.com/Seb-Replay/gestion-production/internal/production"
	"github.com/Seb-Replay/gestion-production/pkg/enums"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

type stockSummary struct {
	Total    int `json:"total"`
	Low      int `json:"low"`
	Critical int `json:"critical"`
}

type productionSummary struct {
	Total           int `json:"total"`
	Running         int `json:"running"`
	Paused          int `json:"paused"`
	Stopped         int `json:"stopped"`
	Completed       int `json:"completed"`
	ProducedRunning int `json:"produced_running"`
}

type planningSummary struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Active  int `json:"active"`
}

type machineSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type activityEntry struct {
	Kind      string    `json:"kind"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

type dashboardSummary struct {
	Stock          stockSummary      `json:"stock"`
	Materials      stockSummary      `json:"materials"`
	Tools          stockSummary      `json:"tools"`
	Productions    productionSummary `json:"productions"`
	References     planningSummary   `json:"references"`
	Machines       machineSummary    `json:"machines"`
	RecentActivity []activityEntry   `json:"recent_activity"`
}

const recentActivityLimit = 10

// Dashboard aggregates alert and run counters for the landing screen.
func Dashboard(inv inventory.Service, prod production.Service, plan planning.Service, looks *lookups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if inv == nil || prod == nil || plan == nil || looks == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard services unavailable"))
			return
		}

		summary := dashboardSummary{RecentActivity: []activityEntry{}}

		stock, err := inv.ListStockProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		summary.Stock.Total = len(stock)
		for _, row := range stock {
			tallyStock(&summary.Stock, row.Status)
		}

		materials, err := inv.ListMaterials(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		summary.Materials.Total = len(materials)
		for _, row := range materials {
			tallyStock(&summary.Materials, row.Status)
		}

		tools, err := inv.ListTools(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		summary.Tools.Total = len(tools)
		for _, row := range tools {
			tallyStock(&summary.Tools, row.Status)
		}

		runs, err := prod.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		summary.Productions.Total = len(runs)
		for _, run := range runs {
			switch run.Status {
			case enums.ProductionStatusRunning:
				summary.Productions.Running++
				summary.Productions.ProducedRunning += run.Produced
			case enums.ProductionStatusPaused:
				summary.Productions.Paused++
			case enums.ProductionStatusStopped:
				summary.Productions.Stopped++
			case enums.ProductionStatusCompleted:
				summary.Productions.Completed++
			}
		}

		refs, err := plan.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		summary.References.Total = len(refs)
		for _, ref := range refs {
			switch ref.Status {
			case enums.ReferenceStatusPending:
				summary.References.Pending++
			case enums.ReferenceStatusActive:
				summary.References.Active++
			}
		}

		machines, err := looks.Machines.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		summary.Machines.Total = len(machines)
		for _, m := range machines {
			if m.Status == enums.MachineStatusActive {
				summary.Machines.Active++
			}
		}

		summary.RecentActivity = recentActivity(runs, refs)

		responses.WriteSuccess(w, summary)
	}
}

// recentActivity merges the newest runs and planned references into one feed.
func recentActivity(runs []production.ProductionDTO, refs []planning.ReferenceDTO) []activityEntry {
	entries := make([]activityEntry, 0, len(runs)+len(refs))
	for _, run := range runs {
		entries = append(entries, activityEntry{Kind: "production", Reference: run.Reference, CreatedAt: run.CreatedAt})
	}
	for _, ref := range refs {
		entries = append(entries, activityEntry{Kind: "reference", Reference: ref.Reference, CreatedAt: ref.CreatedAt})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if len(entries) > recentActivityLimit {
		entries = entries[:recentActivityLimit]
	}
	return entries
}

func tallyStock(s *stockSummary, status enums.StockStatus) {
	switch status {
	case enums.StockStatusLow:
		s.Low++
	case enums.StockStatusCritical:
		s.Critical++
	}
}
