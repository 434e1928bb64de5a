package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/drishtilibrary/drishti-backend/api/routes"
	"github.com/drishtilibrary/drishti-backend/internal/contacts"
	"github.com/drishtilibrary/drishti-backend/internal/content"
	"github.com/drishtilibrary/drishti-backend/internal/settings"
	"github.com/drishtilibrary/drishti-backend/pkg/config"
	"github.com/drishtilibrary/drishti-backend/pkg/db"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
	"github.com/drishtilibrary/drishti-backend/pkg/metrics"
	"github.com/drishtilibrary/drishti-backend/pkg/migrate"
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

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
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

	settingsService, err := settings.NewService(settings.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	contentRepo := content.NewRepository(dbClient.DB())
	slideService, err := content.NewSlideService(contentRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create slide service", err)
		os.Exit(1)
	}
	galleryService, err := content.NewGalleryService(contentRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create gallery service", err)
		os.Exit(1)
	}
	shiftService, err := content.NewShiftService(contentRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create shift service", err)
		os.Exit(1)
	}
	facilityService, err := content.NewFacilityService(contentRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create facility service", err)
		os.Exit(1)
	}

	contactService, err := contacts.NewService(contacts.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create contacts service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

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
		Handler: routes.NewRouter(routes.Deps{
			Config:     cfg,
			Logger:     logg,
			DB:         dbClient,
			Metrics:    httpMetrics,
			Gatherer:   registry,
			Settings:   settingsService,
			Slides:     slideService,
			Gallery:    galleryService,
			Shifts:     shiftService,
			Facilities: facilityService,
			Contacts:   contactService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
