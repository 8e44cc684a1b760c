package main

import (
	"fmt"

	"github.com/MKhiriev/go-rest-demo/internal/config"
	"github.com/MKhiriev/go-rest-demo/internal/handler"
	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/server"
	"github.com/MKhiriev/go-rest-demo/internal/service"
	"github.com/MKhiriev/go-rest-demo/internal/store"
	"github.com/MKhiriev/go-rest-demo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-rest-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-rest-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(log)

	services, err := service.NewServices(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
