package handler

import (
	"context"
	"net/http"
	"time"

	"zentube/internal/container"
	"zentube/internal/middleware"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Storage   string    `json:"storage"`
	Backend   string    `json:"backend"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Service   string    `json:"service"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Storage:   "ok",
		Backend:   h.container.GetConfig().StorageBackend,
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Service:   "zentube",
	}

	status := http.StatusOK
	if err := h.container.Health(ctx); err != nil {
		logger.WithError(err).Warn("Storage health check failed")
		response.Status = "degraded"
		response.Storage = "unavailable"
		status = http.StatusServiceUnavailable
	}

	middleware.WriteJSON(w, status, response, logger)
}
