// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/forkful/v2/pkg/errors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// HealthCheck handles GET /health
func HealthCheck(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := APIResponse{
			Success: true,
			Data: map[string]interface{}{
				"status":    "healthy",
				"version":   version,
				"timestamp": time.Now().Unix(),
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// writeJSON writes a JSON response
func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError converts an error to a structured API error response
func writeError(logger *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "An unexpected error occurred")
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= 500 {
		logger.Error("Request failed",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.String("path", r.URL.Path),
			zap.Error(appErr),
		)
	}

	writeJSON(logger, w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}

// decodeJSON decodes a request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("Invalid JSON body")
	}
	return nil
}

// uuidParam parses a UUID path parameter
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errors.NewValidationError(name + " must be a valid UUID")
	}
	return id, nil
}
