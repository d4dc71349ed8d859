package domain

import (
	"fmt"
	"strings"
)

// FeedMode selects which listing a feed request targets
type FeedMode string

const (
	FeedModeTrending FeedMode = "trending"
	FeedModeCategory FeedMode = "category"
	FeedModeSearch   FeedMode = "search"
	FeedModeHistory  FeedMode = "history"
)

// Search orderings accepted by the catalog
const (
	OrderRelevance = "relevance"
	OrderDate      = "date"
	OrderViewCount = "viewCount"
	OrderRating    = "rating"
)

var validOrders = map[string]bool{
	OrderRelevance: true,
	OrderDate:      true,
	OrderViewCount: true,
	OrderRating:    true,
}

// FeedRequest describes one page of a feed
type FeedRequest struct {
	Mode       FeedMode `json:"mode"`
	CategoryID string   `json:"category_id,omitempty"`
	Query      string   `json:"query,omitempty"`
	Order      string   `json:"order,omitempty"`
	Cursor     string   `json:"cursor,omitempty"`
}

// Validate checks that the request is well formed for its mode
func (r FeedRequest) Validate() error {
	switch r.Mode {
	case FeedModeTrending, FeedModeHistory:
	case FeedModeCategory:
		if strings.TrimSpace(r.CategoryID) == "" {
			return fmt.Errorf("category mode requires a category id")
		}
	case FeedModeSearch:
	default:
		return fmt.Errorf("unknown feed mode %q", r.Mode)
	}

	if r.Order != "" && !validOrders[r.Order] {
		return fmt.Errorf("unsupported order %q", r.Order)
	}
	return nil
}

// UsesSearchEndpoint reports whether the request is served by the search
// listing. Search mode without a query or an explicit order is a default
// browse and is served by the chart listing instead.
func (r FeedRequest) UsesSearchEndpoint() bool {
	return r.Mode == FeedModeSearch && (strings.TrimSpace(r.Query) != "" || r.Order != "")
}

// WithCursor returns a copy of the request continuing at cursor
func (r FeedRequest) WithCursor(cursor string) FeedRequest {
	r.Cursor = cursor
	return r
}

// FeedPage is one page of results in catalog order
type FeedPage struct {
	Items      []VideoItem `json:"items"`
	NextCursor string      `json:"next_cursor,omitempty"`
	PrevCursor string      `json:"prev_cursor,omitempty"`
}

// MergeMode controls how a fetched page combines with what is already shown
type MergeMode int

const (
	MergeReplace MergeMode = iota
	MergeAppend
)

// Merge combines a previously shown page with a newly fetched one. Cursors
// always come from next.
func Merge(prev, next FeedPage, mode MergeMode) FeedPage {
	if mode == MergeReplace {
		items := make([]VideoItem, len(next.Items))
		copy(items, next.Items)
		return FeedPage{Items: items, NextCursor: next.NextCursor, PrevCursor: next.PrevCursor}
	}

	items := make([]VideoItem, 0, len(prev.Items)+len(next.Items))
	items = append(items, prev.Items...)
	items = append(items, next.Items...)
	return FeedPage{Items: items, NextCursor: next.NextCursor, PrevCursor: next.PrevCursor}
}
