package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lekzzicon/portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Responses here are metadata-only; anything this large means a bug
	const maxResponseSize = 10 * 1024 * 1024
	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError translates any error into the normalized failure envelope.
// Unexpected errors are logged with their full cause chain and surfaced as a
// generic 500; internal detail never reaches the caller.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]any{
			"success": false,
			"error":   "An unexpected error occurred",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Int("status", apiErr.StatusCode).Msg("request failed")
	}

	response := map[string]any{
		"success": false,
		"error":   apiErr.Error(),
	}

	// Field information is present for validation errors
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
