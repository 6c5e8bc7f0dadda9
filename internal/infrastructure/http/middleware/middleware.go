// Package middleware provides Chi-compatible middleware for the JSON API server
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/forkful/v2/internal/infrastructure/config"
	"github.com/forkful/v2/pkg/errors"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDHeader carries the authenticated user's ID. Authentication
// itself happens upstream at the gateway; this service trusts the
// header it forwards.
const UserIDHeader = "X-User-ID"

// Logger creates a Chi-compatible logging middleware
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap the response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			fields := []zap.Field{
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("status_code", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)),
				zap.String("user_agent", r.UserAgent()),
			}

			switch {
			case wrapped.statusCode >= 500:
				logger.Error("Server error", fields...)
			case wrapped.statusCode >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
		})
	}
}

// Security adds security headers for API responses
func Security() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}

// CORS adds CORS headers for API endpoints
func CORS(cfg *config.Config) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Server.EnableCORS {
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")
			if isOriginAllowed(cfg, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, "+UserIDHeader)
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// JSONOnly rejects non-JSON bodies on state-changing requests
func JSONOnly() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				contentType := r.Header.Get("Content-Type")
				if contentType != "" && !strings.Contains(contentType, "application/json") {
					writeError(w, r, errors.NewBadRequestError("Content-Type must be application/json"), http.StatusUnsupportedMediaType)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit implements global token bucket rate limiting
func RateLimit(cfg *config.Config) func(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSec), cfg.RateLimit.BurstSize)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.RateLimit.Enable && !limiter.Allow() {
				appErr := errors.NewAppError(errors.CodeTooManyRequests, "Rate limit exceeded", "")
				writeError(w, r, appErr, appErr.StatusCode())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Identity resolves the acting user from the X-User-ID header and
// stores it in the request context. Requests without a valid user ID
// are rejected with 401.
func Identity() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(UserIDHeader)
			if header == "" {
				appErr := errors.NewUnauthorizedError("")
				writeError(w, r, appErr, appErr.StatusCode())
				return
			}

			userID, err := uuid.Parse(header)
			if err != nil {
				appErr := errors.NewUnauthorizedError("Invalid user ID")
				writeError(w, r, appErr, appErr.StatusCode())
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the acting user's ID from the request context
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

func isOriginAllowed(cfg *config.Config, origin string) bool {
	if origin == "" {
		return false
	}
	if cfg.IsDevelopment() {
		return true
	}
	for _, allowed := range cfg.Server.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, r *http.Request, appErr *errors.AppError, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := errors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context()))
	_ = json.NewEncoder(w).Encode(response)
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
