package handler

import (
	"github.com/MKhiriev/go-rest-demo/internal/config"
	"github.com/MKhiriev/go-rest-demo/internal/handler/http"
	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/service"
	"github.com/MKhiriev/go-rest-demo/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, storages, cfg, logger),
	}, nil
}
