package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookmart/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers already sent; nothing useful left to do.
		return
	}
}

// writeSuccess writes a success envelope with the given status code.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, model.Response{
		Message: message,
		Success: true,
		Data:    data,
	})
}

// writeError maps a service error to an HTTP status and writes a failure
// envelope. The error message is surfaced to the caller.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status := statusForError(err)
	logger.Error().Err(err).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.Response{
		Message: err.Error(),
		Success: false,
	})
}

// writeValidationError writes a 400 failure envelope for malformed requests
// rejected before reaching the service layer.
func writeValidationError(w http.ResponseWriter, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Msg("request rejected")
	writeJSON(w, http.StatusBadRequest, model.Response{
		Message: message,
		Success: false,
	})
}

// statusForError resolves the HTTP status for a service error: validation
// and stock failures map to 400, missing entities to 404, everything else
// to 500.
func statusForError(err error) int {
	var stockErr *model.InsufficientStockError
	if errors.As(err, &stockErr) {
		return http.StatusBadRequest
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeValidation:
			return http.StatusBadRequest
		case model.ErrCodeNotFound:
			return http.StatusNotFound
		}
	}

	return http.StatusInternalServerError
}
