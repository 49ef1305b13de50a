package controllers

import (
	"net/http"

	"github.com/Seb-Replay/gestion-production/api/responses"
	"github.com/Seb-Replay/gestion-production/pkg/config"
	"github.com/Seb-Replay/gestion-production/pkg/db"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Gestion-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the store answers a ping.
func HealthReady(cfg *config.Config, client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Gestion-Env", cfg.App.Env)

		if client != nil {
			if err := client.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
