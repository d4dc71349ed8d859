package main

import (
	"bytes"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"zentube/internal/domain"
	"zentube/internal/service/catalog/catalogtest"
	"zentube/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"
)

func setupEnv(t *testing.T, apiKey string) *catalogtest.Server {
	t.Helper()

	srv := catalogtest.NewServer(t)
	t.Setenv("YOUTUBE_API_KEY", apiKey)
	t.Setenv("YOUTUBE_API_BASE_URL", srv.BaseURL())
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "zentube.db"))
	t.Setenv("ENVIRONMENT", "test")
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestTrending(t *testing.T) {
	srv := setupEnv(t, "test-key")
	srv.HandleVideos(catalogtest.Videos(catalogtest.Video("v1", "Popular clip", 2_500_000)))

	out, err := run(t, "trending")
	require.NoError(t, err)

	assert.Contains(t, out, "Trending")
	assert.Contains(t, out, "Popular clip")
	assert.Contains(t, out, "2.5M views")
	assert.Contains(t, out, "v1")
	assert.Equal(t, 1, srv.CallCount())
}

func TestTrending_Pages(t *testing.T) {
	srv := setupEnv(t, "test-key")
	srv.HandleVideos(func(q url.Values) (int, interface{}) {
		if q.Get("pageToken") == "" {
			return http.StatusOK, &youtube.VideoListResponse{
				Items:         []*youtube.Video{catalogtest.Video("p1", "Page one", 1)},
				NextPageToken: "next",
			}
		}
		return http.StatusOK, &youtube.VideoListResponse{
			Items: []*youtube.Video{catalogtest.Video("p2", "Page two", 2)},
		}
	})

	out, err := run(t, "trending", "--pages", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Page one")
	assert.Contains(t, out, "Page two")
	assert.NotContains(t, out, "more available")
	assert.Len(t, srv.Calls(catalogtest.VideosPath), 2, "stops when there is no next page")
}

func TestSearch_Order(t *testing.T) {
	srv := setupEnv(t, "test-key")
	srv.HandleSearch(catalogtest.Search("", catalogtest.SearchResult("s1", "Found it")))

	out, err := run(t, "search", "lofi", "beats", "--order", "date")
	require.NoError(t, err)
	assert.Contains(t, out, "Search: lofi beats")
	assert.Contains(t, out, "Found it")

	calls := srv.Calls(catalogtest.SearchPath)
	require.Len(t, calls, 1)
	assert.Equal(t, "lofi beats", calls[0].Query.Get("q"))
	assert.Equal(t, "date", calls[0].Query.Get("order"))
}

func TestCategory(t *testing.T) {
	srv := setupEnv(t, "test-key")

	out, err := run(t, "category", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Gaming")
	assert.Contains(t, out, "No videos")

	calls := srv.Calls(catalogtest.VideosPath)
	require.Len(t, calls, 1)
	assert.Equal(t, "20", calls[0].Query.Get("videoCategoryId"))
}

func TestUnconfigured(t *testing.T) {
	srv := setupEnv(t, "")

	_, err := run(t, "trending")
	assert.True(t, errors.Is(err, errors.ErrorTypeConfiguration))
	assert.Equal(t, 0, srv.CallCount())

	line := newRenderer(&bytes.Buffer{}).errorLine(err)
	assert.Contains(t, line, "zentube setup <api-key>")
}

func TestSetup(t *testing.T) {
	setupEnv(t, "")

	out, err := run(t, "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "No API key configured")

	out, err = run(t, "setup", "AIza-saved")
	require.NoError(t, err)
	assert.Contains(t, out, "API key configured")

	out, err = run(t, "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "API key configured")

	out, err = run(t, "setup", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "No API key configured")
}

func TestWatchRecordsHistory(t *testing.T) {
	srv := setupEnv(t, "test-key")
	srv.HandleVideos(catalogtest.Videos(catalogtest.Video("w1", "Watched clip", 12)))
	srv.HandleSearch(catalogtest.Search("", catalogtest.SearchResult("r1", "Related clip")))

	out, err := run(t, "watch", "w1")
	require.NoError(t, err)
	assert.Contains(t, out, "Watched clip")
	assert.Contains(t, out, "https://www.youtube.com/watch?v=w1")
	assert.Contains(t, out, "Related clip")

	calls := srv.CallCount()
	out, err = run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Watched clip")
	assert.Equal(t, calls, srv.CallCount())

	out, err = run(t, "history", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared")

	out, err = run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No videos")
}

func TestRenderer_Feed(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf)
	r.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }

	r.feed("Heading", domain.FeedPage{
		Items: []domain.VideoItem{
			{ID: "a", Title: "With stats", PublishedAt: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), Statistics: &domain.Statistics{ViewCount: 1200}},
			{ID: "b", Title: "Without stats"},
		},
		NextCursor: "more",
	})

	out := buf.String()
	assert.Contains(t, out, "1.2K views")
	assert.Contains(t, out, "2 days ago")
	assert.Contains(t, out, "Views unavailable")
	assert.Contains(t, out, "more available")
}
