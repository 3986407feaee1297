package pos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cafe-pos/internal/logger"
	"cafe-pos/internal/models"
)

// Handler is the HTTP presentation boundary of the POS core.
type Handler struct {
	service *Service
	logger  *logger.Logger
	health  func(ctx context.Context) error
}

// NewHandler creates a POS handler. health is used by the /health endpoint
// and may be nil.
func NewHandler(service *Service, log *logger.Logger, health func(ctx context.Context) error) *Handler {
	return &Handler{
		service: service,
		logger:  log,
		health:  health,
	}
}

// calculateRequest is the selection-and-quantity snapshot sent by the
// presentation layer on a calculate action.
type calculateRequest struct {
	Items models.SelectionSnapshot `json:"items"`
}

// Calculate handles POST /calculate requests.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	if r.Method != http.MethodPost {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}

	var req calculateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.service.Calculate(ctx, req.Items, requestID)
	if err != nil {
		var valErr ValidationError
		var storeErr *StorageError
		switch {
		case errors.As(err, &valErr):
			h.logger.Error("validation_failed", "Order validation failed", requestID, err, map[string]interface{}{
				"item": valErr.Item,
			})
			h.writeErrorResponse(w, http.StatusBadRequest, "Enter valid quantities", requestID)
		case errors.Is(err, ErrEmptyOrder):
			h.writeErrorResponse(w, http.StatusBadRequest, "No items selected", requestID)
		case errors.As(err, &storeErr):
			h.logger.Error("order_commit_failed", "Failed to persist order", requestID, err, nil)
			h.writeErrorResponse(w, http.StatusServiceUnavailable, "Order was not saved", requestID)
		default:
			h.logger.Error("calculate_failed", "Calculate action failed", requestID, err, nil)
			h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", requestID)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// Reset handles POST /reset requests. It clears only the pending display
// state; persisted orders are untouched.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	if r.Method != http.MethodPost {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}

	h.service.Reset()
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// Menu handles GET /menu requests with the static catalog.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.service.Catalog().Entries(),
	})
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	healthy := true
	if h.health != nil {
		healthy = h.health(ctx) == nil
	}

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pos-service",
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
		response["status"] = "unhealthy"
	}
	h.writeJSON(w, status, response)
}

// SetupRoutes sets up the HTTP routes.
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/calculate", h.withLogging(h.Calculate))
	mux.HandleFunc("/reset", h.withLogging(h.Reset))
	mux.HandleFunc("/menu", h.withLogging(h.Menu))
	mux.HandleFunc("/health", h.withLogging(h.HealthCheck))

	return mux
}

type contextKey string

const requestIDKey contextKey = "request_id"

func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return logger.GenerateRequestID()
}

// withLogging adds request logging middleware.
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
			})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}

// writeErrorResponse writes an error response in JSON format.
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, requestID string) {
	h.writeJSON(w, statusCode, map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	})
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
