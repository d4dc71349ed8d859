package service

import (
	"context"

	"zentube/internal/domain"
	"zentube/pkg/errors"
)

// CatalogClient translates feed requests into catalog API calls
type CatalogClient interface {
	// ListByMode fetches one listing page for a trending, category or search request
	ListByMode(ctx context.Context, key string, req domain.FeedRequest) (*domain.FeedPage, error)

	// EnrichWithStatistics attaches statistics to items in one batched call
	EnrichWithStatistics(ctx context.Context, key string, items []domain.VideoItem) ([]domain.VideoItem, error)

	// Video fetches a single video with statistics
	Video(ctx context.Context, key string, id string) (*domain.VideoItem, error)

	// Related fetches videos related to id
	Related(ctx context.Context, key string, id string) ([]domain.VideoItem, error)
}

// CredentialStore holds the catalog API key
type CredentialStore interface {
	// Get returns the configured key, or "" when none is set
	Get(ctx context.Context) (string, error)

	// Set persists a trimmed, non-empty key
	Set(ctx context.Context, value string) error

	// Clear removes the persisted key
	Clear(ctx context.Context) error

	// IsConfigured reports whether a non-empty key is available
	IsConfigured(ctx context.Context) bool
}

// HistoryStore holds recently watched videos
type HistoryStore interface {
	// Record moves item to the front of the history
	Record(ctx context.Context, item domain.VideoItem) error

	// All returns the history, most recent first
	All(ctx context.Context) ([]domain.HistoryEntry, error)

	// Clear forgets the whole history
	Clear(ctx context.Context) error
}

// FeedService produces feed pages
type FeedService interface {
	Fetch(ctx context.Context, req domain.FeedRequest) (*domain.FeedPage, error)
}

// WatchService opens a video for viewing
type WatchService interface {
	Open(ctx context.Context, videoID string) (*domain.WatchSession, error)
}

// Services aggregates all service interfaces
type Services struct {
	Catalog    CatalogClient
	Credential CredentialStore
	History    HistoryStore
	Feed       FeedService
	Watch      WatchService
}

// RequireKey returns the configured API key, or a configuration error when
// none is set.
func RequireKey(ctx context.Context, creds CredentialStore) (string, error) {
	key, err := creds.Get(ctx)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", errors.NewConfigurationError("YouTube API key is not configured")
	}
	return key, nil
}
