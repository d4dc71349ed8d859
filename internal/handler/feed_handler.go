package handler

import (
	"net/http"
	"time"

	"zentube/internal/domain"
	"zentube/internal/middleware"
	"zentube/internal/service"
	"zentube/pkg/format"
	"zentube/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// FeedHandler serves feed pages
type FeedHandler struct {
	feed    service.FeedService
	history service.HistoryStore
	logger  *logger.Logger
	now     func() time.Time
}

func NewFeedHandler(feed service.FeedService, history service.HistoryStore, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{feed: feed, history: history, logger: logger, now: time.Now}
}

// VideoView is a VideoItem with display labels
type VideoView struct {
	domain.VideoItem
	ViewsLabel string `json:"views_label"`
	AgeLabel   string `json:"age_label"`
}

// FeedResponse is one rendered feed page
type FeedResponse struct {
	Items      []VideoView `json:"items"`
	NextCursor string      `json:"next_cursor,omitempty"`
	PrevCursor string      `json:"prev_cursor,omitempty"`
}

// Browse handles GET /api/feed?q=&order=&cursor=
func (h *FeedHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.serve(w, r, domain.FeedRequest{
		Mode:   domain.FeedModeSearch,
		Query:  q.Get("q"),
		Order:  q.Get("order"),
		Cursor: q.Get("cursor"),
	})
}

// Trending handles GET /api/feed/trending
func (h *FeedHandler) Trending(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.FeedRequest{
		Mode:   domain.FeedModeTrending,
		Cursor: r.URL.Query().Get("cursor"),
	})
}

// Explore handles GET /api/feed/explore/{categoryId}
func (h *FeedHandler) Explore(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.FeedRequest{
		Mode:       domain.FeedModeCategory,
		CategoryID: chi.URLParam(r, "categoryId"),
		Cursor:     r.URL.Query().Get("cursor"),
	})
}

// History handles GET /api/feed/history
func (h *FeedHandler) History(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.FeedRequest{Mode: domain.FeedModeHistory})
}

// ClearHistory handles DELETE /api/feed/history
func (h *FeedHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context()); err != nil {
		middleware.WriteError(w, r, err, h.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{"cleared": true}, h.logger)
}

func (h *FeedHandler) serve(w http.ResponseWriter, r *http.Request, req domain.FeedRequest) {
	page, err := h.feed.Fetch(r.Context(), req)
	if err != nil {
		middleware.WriteError(w, r, err, h.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, FeedResponse{
		Items:      renderVideos(page.Items, h.now()),
		NextCursor: page.NextCursor,
		PrevCursor: page.PrevCursor,
	}, h.logger)
}

func renderVideo(v domain.VideoItem, now time.Time) VideoView {
	view := VideoView{VideoItem: v, ViewsLabel: format.ViewsUnavailable}
	if v.Statistics != nil {
		view.ViewsLabel = format.FormatViews(v.Statistics.ViewCount)
	}
	if !v.PublishedAt.IsZero() {
		view.AgeLabel = format.FormatAge(v.PublishedAt, now)
	}
	return view
}

func renderVideos(items []domain.VideoItem, now time.Time) []VideoView {
	out := make([]VideoView, len(items))
	for i, v := range items {
		out[i] = renderVideo(v, now)
	}
	return out
}
