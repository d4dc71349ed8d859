package domain

import "time"

// VideoItem is a single catalog entry. ID is the canonical video identifier,
// normalized once when the item leaves the catalog client.
type VideoItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	ChannelID    string      `json:"channel_id,omitempty"`
	ChannelTitle string      `json:"channel_title"`
	PublishedAt  time.Time   `json:"published_at"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Statistics   *Statistics `json:"statistics,omitempty"`
}

// Statistics are the engagement counters of a video. A nil *Statistics on a
// VideoItem means they are unavailable.
type Statistics struct {
	ViewCount uint64 `json:"view_count"`
	LikeCount uint64 `json:"like_count"`
}

// HasStatistics reports whether statistics are attached
func (v VideoItem) HasStatistics() bool {
	return v.Statistics != nil
}

// HistoryEntry is a watched video snapshot
type HistoryEntry struct {
	VideoItem
	WatchedAt time.Time `json:"watched_at"`
}

// WatchSession is the result of opening a video
type WatchSession struct {
	Video   VideoItem   `json:"video"`
	Related []VideoItem `json:"related"`
}
