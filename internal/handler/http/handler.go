package http

import (
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
)

type Handler struct {
	services *service.Services

	// security decides which routes reject anonymous callers.
	security config.Security

	// requestTimeout bounds each request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		security:       cfg.Security,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
