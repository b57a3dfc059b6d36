package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/handler"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/server"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-contacts-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("avatar_dir", cfg.Storage.Files.AvatarDir).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(db, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	mailer, err := adapter.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	services := service.NewServices(storages, mailer, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
