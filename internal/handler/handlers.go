package handler

import (
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/handler/http"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/service"
	"github.com/MKhiriev/go-wu-catalog/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, buildInfo, logger),
	}, nil
}
