package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     FeedRequest
		wantErr bool
	}{
		{"trending", FeedRequest{Mode: FeedModeTrending}, false},
		{"history", FeedRequest{Mode: FeedModeHistory}, false},
		{"search with query", FeedRequest{Mode: FeedModeSearch, Query: "cats"}, false},
		{"search default browse", FeedRequest{Mode: FeedModeSearch}, false},
		{"search with order", FeedRequest{Mode: FeedModeSearch, Order: OrderViewCount}, false},
		{"category", FeedRequest{Mode: FeedModeCategory, CategoryID: "20"}, false},
		{"category without id", FeedRequest{Mode: FeedModeCategory, CategoryID: "  "}, true},
		{"bad order", FeedRequest{Mode: FeedModeSearch, Order: "newest"}, true},
		{"unknown mode", FeedRequest{Mode: "playlist"}, true},
		{"empty mode", FeedRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeedRequest_UsesSearchEndpoint(t *testing.T) {
	assert.True(t, FeedRequest{Mode: FeedModeSearch, Query: "cats"}.UsesSearchEndpoint())
	assert.True(t, FeedRequest{Mode: FeedModeSearch, Order: OrderDate}.UsesSearchEndpoint())
	assert.False(t, FeedRequest{Mode: FeedModeSearch, Query: "   "}.UsesSearchEndpoint())
	assert.False(t, FeedRequest{Mode: FeedModeTrending, Query: "cats"}.UsesSearchEndpoint())
	assert.False(t, FeedRequest{Mode: FeedModeCategory, CategoryID: "20"}.UsesSearchEndpoint())
}

func TestMerge(t *testing.T) {
	prev := FeedPage{Items: []VideoItem{{ID: "a"}, {ID: "b"}}, NextCursor: "p2"}
	next := FeedPage{Items: []VideoItem{{ID: "c"}}, NextCursor: "p3", PrevCursor: "p1"}

	appended := Merge(prev, next, MergeAppend)
	assert.Equal(t, []VideoItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}, appended.Items)
	assert.Equal(t, "p3", appended.NextCursor)
	assert.Equal(t, "p1", appended.PrevCursor)

	replaced := Merge(prev, next, MergeReplace)
	assert.Equal(t, []VideoItem{{ID: "c"}}, replaced.Items)
	assert.Equal(t, "p3", replaced.NextCursor)

	// the merged page never aliases the inputs
	appended.Items[0].ID = "changed"
	assert.Equal(t, "a", prev.Items[0].ID)
}
