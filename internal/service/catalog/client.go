package catalog

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"zentube/internal/domain"
	"zentube/pkg/errors"
	"zentube/pkg/logger"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	DefaultBaseURL      = "https://youtube.googleapis.com/"
	DefaultRegionCode   = "US"
	DefaultPageSize     = 24
	DefaultRelatedLimit = 15
	DefaultTimeout      = 15 * time.Second
)

// Options configures the catalog client
type Options struct {
	BaseURL      string
	RegionCode   string
	PageSize     int64
	RelatedLimit int64
	HTTPClient   *http.Client
}

func (o *Options) setDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(o.BaseURL, "/") {
		o.BaseURL += "/"
	}
	if o.RegionCode == "" {
		o.RegionCode = DefaultRegionCode
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.RelatedLimit <= 0 {
		o.RelatedLimit = DefaultRelatedLimit
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
}

// Client is a stateless translator from feed requests to YouTube Data API
// calls. The API key is supplied per call.
type Client struct {
	yt     *youtube.Service
	opts   Options
	logger *logger.Logger
}

// NewClient creates a catalog client
func NewClient(opts Options, logger *logger.Logger) (*Client, error) {
	opts.setDefaults()

	yt, err := youtube.NewService(context.Background(),
		option.WithEndpoint(opts.BaseURL),
		option.WithHTTPClient(opts.HTTPClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize YouTube service: %w", err)
	}

	return &Client{yt: yt, opts: opts, logger: logger}, nil
}

// ListByMode fetches one listing page. Trending, category and default-browse
// requests read the most popular chart; searches with a query or explicit
// order read the search listing.
func (c *Client) ListByMode(ctx context.Context, key string, req domain.FeedRequest) (*domain.FeedPage, error) {
	log := c.logger.WithFields(map[string]interface{}{
		"mode":   string(req.Mode),
		"cursor": req.Cursor,
	})

	if req.UsesSearchEndpoint() {
		log.Debug("Listing search results")
		return c.search(ctx, key, req)
	}

	log.Debug("Listing chart")

	call := c.yt.Videos.List([]string{"snippet", "statistics"}).
		Chart("mostPopular").
		RegionCode(c.opts.RegionCode).
		MaxResults(c.opts.PageSize)
	if req.Mode == domain.FeedModeCategory {
		call = call.VideoCategoryId(req.CategoryID)
	}
	if req.Cursor != "" {
		call = call.PageToken(req.Cursor)
	}

	resp, err := call.Context(ctx).Do(keyParam(key))
	if err != nil {
		return nil, c.mapError(err, "videos")
	}

	page := &domain.FeedPage{
		Items:      make([]domain.VideoItem, 0, len(resp.Items)),
		NextCursor: resp.NextPageToken,
		PrevCursor: resp.PrevPageToken,
	}
	for _, v := range resp.Items {
		if item, ok := fromVideo(v); ok {
			page.Items = append(page.Items, item)
		}
	}
	return page, nil
}

func (c *Client) search(ctx context.Context, key string, req domain.FeedRequest) (*domain.FeedPage, error) {
	order := req.Order
	if order == "" {
		order = domain.OrderRelevance
	}

	call := c.yt.Search.List([]string{"snippet"}).
		Type("video").
		Order(order).
		MaxResults(c.opts.PageSize)
	if q := strings.TrimSpace(req.Query); q != "" {
		call = call.Q(q)
	}
	if req.Cursor != "" {
		call = call.PageToken(req.Cursor)
	}

	resp, err := call.Context(ctx).Do(keyParam(key))
	if err != nil {
		return nil, c.mapError(err, "search")
	}

	return searchPage(resp), nil
}

// EnrichWithStatistics fetches statistics for all items in one batched call
// and attaches them by id. Items the remote does not return keep nil
// statistics.
func (c *Client) EnrichWithStatistics(ctx context.Context, key string, items []domain.VideoItem) ([]domain.VideoItem, error) {
	out := make([]domain.VideoItem, len(items))
	copy(out, items)

	ids := make([]string, 0, len(out))
	for _, item := range out {
		if item.ID != "" {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return out, nil
	}

	c.logger.WithField("count", len(ids)).Debug("Fetching statistics")

	resp, err := c.yt.Videos.List([]string{"statistics"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do(keyParam(key))
	if err != nil {
		return out, c.mapError(err, "videos")
	}

	stats := make(map[string]*domain.Statistics, len(resp.Items))
	for _, v := range resp.Items {
		if v == nil || v.Statistics == nil {
			continue
		}
		stats[v.Id] = toStatistics(v.Statistics)
	}

	for i := range out {
		if s, ok := stats[out[i].ID]; ok {
			out[i].Statistics = s
		}
	}
	return out, nil
}

// Video fetches one video with its statistics
func (c *Client) Video(ctx context.Context, key string, id string) (*domain.VideoItem, error) {
	c.logger.WithField("video_id", id).Debug("Fetching video detail")

	resp, err := c.yt.Videos.List([]string{"snippet", "statistics"}).
		Id(id).
		Context(ctx).
		Do(keyParam(key))
	if err != nil {
		return nil, c.mapError(err, "videos")
	}

	for _, v := range resp.Items {
		if item, ok := fromVideo(v); ok {
			return &item, nil
		}
	}

	return nil, errors.NewNotFoundError(fmt.Sprintf("video %s not found", id))
}

// Related fetches videos related to id
func (c *Client) Related(ctx context.Context, key string, id string) ([]domain.VideoItem, error) {
	c.logger.WithField("video_id", id).Debug("Fetching related videos")

	resp, err := c.yt.Search.List([]string{"snippet"}).
		Type("video").
		MaxResults(c.opts.RelatedLimit).
		Context(ctx).
		Do(keyParam(key), googleapi.QueryParameter("relatedToVideoId", id))
	if err != nil {
		return nil, c.mapError(err, "search")
	}

	return searchPage(resp).Items, nil
}

func keyParam(key string) googleapi.CallOption {
	return googleapi.QueryParameter("key", key)
}

// mapError converts client errors into the application error types. Remote
// responses carry their message, everything else is a transport failure.
func (c *Client) mapError(err error, endpoint string) error {
	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		c.logger.WithFields(map[string]interface{}{
			"endpoint": endpoint,
			"status":   apiErr.Code,
		}).WithError(err).Error("Catalog request failed")
		return errors.NewRemoteError(apiErr.Code, apiErr.Message, err)
	}

	c.logger.WithField("endpoint", endpoint).WithError(err).Error("Catalog request did not complete")
	return errors.NewTransportError("Failed to reach the YouTube API", err)
}
