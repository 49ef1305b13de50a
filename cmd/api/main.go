package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Seb-Replay/gestion-production/api/routes"
	"github.com/Seb-Replay/gestion-production/internal/excel"
	"github.com/Seb-Replay/gestion-production/internal/inventory"
	"github.com/Seb-Replay/gestion-production/internal/lookups"
	"github.com/Seb-Replay/gestion-production/internal/planning"
	"github.com/Seb-Replay/gestion-production/internal/production"
	"github.com/Seb-Replay/gestion-production/pkg/config"
	"github.com/Seb-Replay/gestion-production/pkg/db"
	"github.com/Seb-Replay/gestion-production/pkg/logger"
	"github.com/Seb-Replay/gestion-production/pkg/metrics"
	"github.com/Seb-Replay/gestion-production/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	conn := dbClient.DB()

	inventoryService, err := inventory.NewService(inventory.NewRepository(conn))
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	productionService, err := production.NewService(production.NewRepository(conn))
	if err != nil {
		logg.Error(context.Background(), "failed to create production service", err)
		os.Exit(1)
	}

	planningService, err := planning.NewService(planning.NewRepository(conn))
	if err != nil {
		logg.Error(context.Background(), "failed to create planning service", err)
		os.Exit(1)
	}

	lookupService, err := lookups.NewService(conn)
	if err != nil {
		logg.Error(context.Background(), "failed to create lookup service", err)
		os.Exit(1)
	}

	transferMetrics := metrics.NewTransferMetrics(prometheus.DefaultRegisterer)
	excelService, err := excel.NewService(inventoryService, transferMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create transfer service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, routes.Services{
			Inventory:  inventoryService,
			Production: productionService,
			Planning:   planningService,
			Lookups:    lookupService,
			Excel:      excelService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
