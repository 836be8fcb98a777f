package http

import (
	"net/http"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/service"
)

const defaultMaxUploadSize int64 = 64 << 20

type Handler struct {
	services *service.Services

	// media serves locally stored uploads under /media/. It is nil for
	// the s3 backend.
	media http.Handler

	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, media http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	return &Handler{
		services:      services,
		media:         media,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}
