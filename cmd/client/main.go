package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-rest-demo/internal/adapter"
	"github.com/MKhiriev/go-rest-demo/internal/client"
	"github.com/MKhiriev/go-rest-demo/internal/config"
	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/service"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-rest-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-rest-client", cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(service.NewDemoService(serverAdapter, log), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = app.Run(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, client.ErrCallsFailed) {
			log.Error().Err(err).Msg("client run error")
		}
		os.Exit(1)
	}
}
