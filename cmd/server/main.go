package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/handler"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/server"
	"github.com/MKhiriev/go-wu-catalog/internal/service"
	"github.com/MKhiriev/go-wu-catalog/internal/store"
	"github.com/MKhiriev/go-wu-catalog/internal/workers"
	"github.com/MKhiriev/go-wu-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("wu-catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	catalogAdapter, err := adapter.NewSOAPAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog adapter")
	}

	var storages *store.Storages
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnect(context.Background(), cfg.Storage, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating storages")
		}
		defer db.Close()
		storages = store.NewStorages(db, log)
	} else {
		log.Warn().Msg("no database DSN configured, build snapshots are disabled")
	}

	services := service.NewServices(catalogAdapter, storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, buildInfo, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
