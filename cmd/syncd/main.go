package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/playwise/kidsync/internal/adapter"
	"github.com/playwise/kidsync/internal/client"
	"github.com/playwise/kidsync/internal/config"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/server"
	"github.com/playwise/kidsync/internal/service"
	"github.com/playwise/kidsync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewClientLogger("kidsync-syncd")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	contentHost, err := adapter.NewHTTPContentHost(cfg.Content, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create content host adapter")
	}

	backend, err := adapter.NewHTTPBackend(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, contentHost, backend, cfg.Workers, log)

	tokenFn := client.SessionTokenFunc(cfg.Storage)
	statusHandler := server.NewHandler(services.Engine, localStorage.ContentCache, tokenFn, cfg.App.Version, log)
	statusServer := server.NewStatusServer(statusHandler, cfg.Server, log)

	app, err := client.NewApp(services, statusServer, tokenFn, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init sync daemon error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("sync daemon run error")
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
