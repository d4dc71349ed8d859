package catalog

import (
	"time"

	"zentube/internal/domain"

	"google.golang.org/api/youtube/v3"
)

// fromVideo converts a videos listing item. The id is a bare string here.
func fromVideo(v *youtube.Video) (domain.VideoItem, bool) {
	if v == nil || v.Id == "" {
		return domain.VideoItem{}, false
	}

	item := domain.VideoItem{ID: v.Id}
	if s := v.Snippet; s != nil {
		item.Title = s.Title
		item.Description = s.Description
		item.ChannelID = s.ChannelId
		item.ChannelTitle = s.ChannelTitle
		item.PublishedAt = parsePublished(s.PublishedAt)
		item.ThumbnailURL = thumbnailURL(s.Thumbnails)
	}
	if v.Statistics != nil {
		item.Statistics = toStatistics(v.Statistics)
	}
	return item, true
}

// fromSearchResult converts a search listing item. The id is nested under
// id.videoId; results that are not videos are dropped.
func fromSearchResult(r *youtube.SearchResult) (domain.VideoItem, bool) {
	if r == nil || r.Id == nil || r.Id.VideoId == "" {
		return domain.VideoItem{}, false
	}

	item := domain.VideoItem{ID: r.Id.VideoId}
	if s := r.Snippet; s != nil {
		item.Title = s.Title
		item.Description = s.Description
		item.ChannelID = s.ChannelId
		item.ChannelTitle = s.ChannelTitle
		item.PublishedAt = parsePublished(s.PublishedAt)
		item.ThumbnailURL = thumbnailURL(s.Thumbnails)
	}
	return item, true
}

func searchPage(resp *youtube.SearchListResponse) *domain.FeedPage {
	page := &domain.FeedPage{
		Items:      make([]domain.VideoItem, 0, len(resp.Items)),
		NextCursor: resp.NextPageToken,
		PrevCursor: resp.PrevPageToken,
	}
	for _, r := range resp.Items {
		if item, ok := fromSearchResult(r); ok {
			page.Items = append(page.Items, item)
		}
	}
	return page
}

func toStatistics(s *youtube.VideoStatistics) *domain.Statistics {
	return &domain.Statistics{
		ViewCount: s.ViewCount,
		LikeCount: s.LikeCount,
	}
}

// thumbnailURL prefers high, then medium, then default resolution
func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

func parsePublished(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
