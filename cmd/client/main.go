package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/client"
	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/tui"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// the picker shares the terminal, keep logs out of it
	log := logger.NewFileLogger("go-pass-autofill-client", "go-pass-autofill-client.log")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// page origin is the single positional argument
	pageOrigin := flag.Arg(0)

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

	services := service.NewServices(hostAdapter, bridge, store.NewStorages(db, log), *cfg, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, pageOrigin, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
