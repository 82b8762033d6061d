// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/quote-sync/internal/adapter"
	"github.com/MKhiriev/quote-sync/internal/client"
	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/controller"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/notify"
	"github.com/MKhiriev/quote-sync/internal/service"
	"github.com/MKhiriev/quote-sync/internal/tui"
	"github.com/MKhiriev/quote-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("quote-sync-client", cfg.Log.FilePath, cfg.Log.Level)

	quoteAdapter, err := adapter.NewApexAdapter(cfg.Adapter, cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create apex adapter")
	}

	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}
	services := service.NewServices(quoteAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	bus := notify.NewBus(log)
	syncModal := controller.NewSyncModalController(cfg.App.QuoteID, services.QuoteService, bus, log)

	ui, err := tui.New(syncModal, bus, services.AppInfoService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, cfg.App.QuoteID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
