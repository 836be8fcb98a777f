package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/handler/http"
	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled in cfg. media serves
// locally stored uploads and may be nil.
func NewHandlers(services *service.Services, cfg config.Server, media nethttp.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, media, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
