package handler

import (
	"net/http"
	"time"

	"zentube/internal/middleware"
	"zentube/internal/service"
	"zentube/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// WatchHandler opens videos
type WatchHandler struct {
	watch  service.WatchService
	logger *logger.Logger
	now    func() time.Time
}

func NewWatchHandler(watch service.WatchService, logger *logger.Logger) *WatchHandler {
	return &WatchHandler{watch: watch, logger: logger, now: time.Now}
}

// WatchResponse is a rendered watch session
type WatchResponse struct {
	Video    VideoView   `json:"video"`
	Related  []VideoView `json:"related"`
	EmbedURL string      `json:"embed_url"`
}

// Open handles GET /api/watch/{videoId}
func (h *WatchHandler) Open(w http.ResponseWriter, r *http.Request) {
	session, err := h.watch.Open(r.Context(), chi.URLParam(r, "videoId"))
	if err != nil {
		middleware.WriteError(w, r, err, h.logger)
		return
	}

	now := h.now()
	middleware.WriteJSON(w, http.StatusOK, WatchResponse{
		Video:    renderVideo(session.Video, now),
		Related:  renderVideos(session.Related, now),
		EmbedURL: "https://www.youtube.com/embed/" + session.Video.ID + "?autoplay=1",
	}, h.logger)
}
