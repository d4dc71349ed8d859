// Package catalogtest provides an in-process fake of the YouTube Data API for tests.
package catalogtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/youtube/v3"
)

const (
	VideosPath = "/youtube/v3/videos"
	SearchPath = "/youtube/v3/search"
)

// HandlerFunc answers one API call with a status code and a JSON body
type HandlerFunc func(q url.Values) (status int, body interface{})

// Call is a recorded request
type Call struct {
	Path  string
	Query url.Values
}

// Server is a fake catalog. Unconfigured endpoints answer with empty lists.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	calls  []Call
	videos HandlerFunc
	search HandlerFunc
}

// NewServer starts a fake catalog that is closed when the test ends
func NewServer(t testing.TB) *Server {
	s := &Server{
		videos: func(url.Values) (int, interface{}) { return http.StatusOK, &youtube.VideoListResponse{} },
		search: func(url.Values) (int, interface{}) { return http.StatusOK, &youtube.SearchListResponse{} },
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the endpoint to hand to the catalog client
func (s *Server) BaseURL() string {
	return s.URL + "/"
}

func (s *Server) HandleVideos(fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = fn
}

func (s *Server) HandleSearch(fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = fn
}

// Calls returns the recorded requests, optionally filtered by path
func (s *Server) Calls(path string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Call, 0, len(s.calls))
	for _, c := range s.calls {
		if path == "" || c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// CallCount is the number of requests received on any path
func (s *Server) CallCount() int {
	return len(s.Calls(""))
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Path: r.URL.Path, Query: r.URL.Query()})
	var fn HandlerFunc
	switch r.URL.Path {
	case VideosPath:
		fn = s.videos
	case SearchPath:
		fn = s.search
	}
	s.mu.Unlock()

	if fn == nil {
		http.NotFound(w, r)
		return
	}

	status, body := fn(r.URL.Query())
	if raw, ok := body.(string); ok {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(raw))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Video builds a videos listing item with statistics
func Video(id, title string, views uint64) *youtube.Video {
	v := VideoNoStats(id, title)
	v.Statistics = &youtube.VideoStatistics{ViewCount: views, LikeCount: views / 10}
	return v
}

// VideoNoStats builds a videos listing item without statistics
func VideoNoStats(id, title string) *youtube.Video {
	return &youtube.Video{
		Id: id,
		Snippet: &youtube.VideoSnippet{
			Title:        title,
			ChannelTitle: "channel " + id,
			PublishedAt:  "2024-01-15T10:00:00Z",
			Thumbnails: &youtube.ThumbnailDetails{
				Medium: &youtube.Thumbnail{Url: "https://i.ytimg.com/vi/" + id + "/mqdefault.jpg"},
				High:   &youtube.Thumbnail{Url: "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"},
			},
		},
	}
}

// Stats builds a statistics-only videos item, as returned by enrichment calls
func Stats(id string, views uint64) *youtube.Video {
	return &youtube.Video{
		Id:         id,
		Statistics: &youtube.VideoStatistics{ViewCount: views, LikeCount: views / 10},
	}
}

// SearchResult builds a search listing item
func SearchResult(id, title string) *youtube.SearchResult {
	return &youtube.SearchResult{
		Id: &youtube.ResourceId{Kind: "youtube#video", VideoId: id},
		Snippet: &youtube.SearchResultSnippet{
			Title:        title,
			ChannelTitle: "channel " + id,
			PublishedAt:  "2024-01-15T10:00:00Z",
			Thumbnails: &youtube.ThumbnailDetails{
				Medium: &youtube.Thumbnail{Url: "https://i.ytimg.com/vi/" + id + "/mqdefault.jpg"},
			},
		},
	}
}

// Videos answers with the given items
func Videos(items ...*youtube.Video) HandlerFunc {
	return func(url.Values) (int, interface{}) {
		return http.StatusOK, &youtube.VideoListResponse{Items: items}
	}
}

// StatsFor answers enrichment calls with statistics for the listed ids only
func StatsFor(views map[string]uint64) HandlerFunc {
	return func(q url.Values) (int, interface{}) {
		resp := &youtube.VideoListResponse{}
		for _, id := range strings.Split(q.Get("id"), ",") {
			if n, ok := views[id]; ok {
				resp.Items = append(resp.Items, Stats(id, n))
			}
		}
		return http.StatusOK, resp
	}
}

// Search answers with the given results and next page token
func Search(next string, items ...*youtube.SearchResult) HandlerFunc {
	return func(url.Values) (int, interface{}) {
		return http.StatusOK, &youtube.SearchListResponse{Items: items, NextPageToken: next}
	}
}

// Error answers with a YouTube-style error body
func Error(status int, message string) HandlerFunc {
	return func(url.Values) (int, interface{}) {
		return status, map[string]interface{}{
			"error": map[string]interface{}{
				"code":    status,
				"message": message,
			},
		}
	}
}
