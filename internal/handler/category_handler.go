package handler

import (
	"net/http"

	"zentube/internal/domain"
	"zentube/internal/middleware"
	"zentube/pkg/logger"
)

type CategoryHandler struct {
	logger *logger.Logger
}

func NewCategoryHandler(logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{logger: logger}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, domain.Categories, h.logger)
}
