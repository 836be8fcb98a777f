package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/service"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,
	service.ErrConflict:   http.StatusConflict,
	service.ErrNotFound:   http.StatusNotFound,
	service.ErrForbidden:  http.StatusForbidden,
	service.ErrUnexpected: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and the client message
// it carries. Server-side failures are logged with the full cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
	}

	writeErrorMessage(w, r, status, service.Message(err))
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func writeData(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
