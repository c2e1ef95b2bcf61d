package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/config"
	handler "github.com/MKhiriev/go-pass-autofill/internal/handler/http"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/server"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/internal/workers"
	"github.com/MKhiriev/go-pass-autofill/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-pass-autofill-agent")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	utils.InitHasherPool(utils.DeriveUsageHashKey(cfg.App.AgentSecret))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to local database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error migrating local database")
	}

	hostAdapter, err := adapter.NewHTTPHostAdapter(cfg.Host, cfg.Stores, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating host adapter")
	}

	bridge, err := adapter.NewHTTPBridge(cfg.Bridge, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating page bridge")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(hostAdapter, bridge, storages, *cfg, log)

	workers.NewWorkers(
		workers.NewBadgeCacheWorker(ctx, services.BadgeService, cfg.Workers.BadgeRefreshInterval, log),
	).Run()

	handlers := handler.NewHandler(services, cfg.App.Version, log)
	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
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
}
