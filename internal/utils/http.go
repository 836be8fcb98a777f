package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmptyFormField is returned by [DecodeFormJSON] when the field is absent.
var ErrEmptyFormField = errors.New("form field is empty")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Returns the number of bytes written to the response body.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeFormJSON decodes a JSON document carried in a single form field
// (e.g. "room_data") into dst. Unknown keys are ignored.
//
// The request form must already be parsed.
func DecodeFormJSON(r *http.Request, field string, dst any) error {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return fmt.Errorf("%w: %s", ErrEmptyFormField, field)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("error decoding %s: %w", field, err)
	}

	return nil
}
