package main

import (
	"context"
	"fmt"

	"github.com/candorpath/assess360/internal/config"
	"github.com/candorpath/assess360/internal/crypto"
	handlerhttp "github.com/candorpath/assess360/internal/handler/http"
	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/internal/server"
	"github.com/candorpath/assess360/internal/service"
	"github.com/candorpath/assess360/internal/store"
	"github.com/candorpath/assess360/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("assess360-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the key and secret are deliberately not logged
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Strs("open_ended_prefixes", cfg.Questions.OpenEndedPrefixes).
		Msg("received configs")

	codec, err := crypto.NewCodec(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher codec")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, codec, cfg.Questions, log)
	handler := handlerhttp.NewHandler(services, codec, cfg.App.AdminSecret, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
