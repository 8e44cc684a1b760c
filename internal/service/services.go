package service

import (
	"fmt"

	"github.com/MKhiriev/go-rest-demo/internal/config"
	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/models"
)

type Services struct {
	AuthService     AuthService
	RestService     RestService
	GreetingService GreetingService
	AppInfoService  AppInfoService
}

func NewServices(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(logger),
		RestService:     NewRestService(logger),
		GreetingService: NewGreetingService(),
		AppInfoService:  appInfoService,
	}, nil
}
