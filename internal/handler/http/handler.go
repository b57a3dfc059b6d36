package http

import (
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
)

type Handler struct {
	services *service.Services

	// avatarDir is served under /avatars/.
	avatarDir string

	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, avatarDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		avatarDir:      avatarDir,
		maxUploadSize:  cfg.MaxUploadSize,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
