package handler

import (
	"encoding/json"
	"net/http"

	"zentube/internal/middleware"
	"zentube/internal/service"
	"zentube/pkg/errors"
	"zentube/pkg/logger"
)

// SetupHandler manages the catalog API key
type SetupHandler struct {
	credentials service.CredentialStore
	logger      *logger.Logger
}

func NewSetupHandler(credentials service.CredentialStore, logger *logger.Logger) *SetupHandler {
	return &SetupHandler{credentials: credentials, logger: logger}
}

// SetupRequest is the body of PUT /api/setup
type SetupRequest struct {
	APIKey string `json:"api_key"`
}

// SetupStatus tells whether an API key is available
type SetupStatus struct {
	Configured bool `json:"configured"`
}

// Status handles GET /api/setup
func (h *SetupHandler) Status(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, SetupStatus{Configured: h.credentials.IsConfigured(r.Context())}, h.logger)
}

// Save handles PUT /api/setup
func (h *SetupHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SetupRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		middleware.WriteError(w, r, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	if err := h.credentials.Set(r.Context(), req.APIKey); err != nil {
		middleware.WriteError(w, r, err, h.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, SetupStatus{Configured: true}, h.logger)
}

// Clear handles DELETE /api/setup
func (h *SetupHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.credentials.Clear(ctx); err != nil {
		middleware.WriteError(w, r, err, h.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, SetupStatus{Configured: h.credentials.IsConfigured(ctx)}, h.logger)
}
