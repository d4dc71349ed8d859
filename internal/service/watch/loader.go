package watch

import (
	"context"
	"strings"

	"zentube/internal/domain"
	"zentube/internal/service"
	"zentube/pkg/errors"
	"zentube/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Loader opens a video: its detail and related videos are fetched
// concurrently, and a successful open is recorded into the history.
type Loader struct {
	catalog     service.CatalogClient
	credentials service.CredentialStore
	history     service.HistoryStore
	logger      *logger.Logger
}

// NewLoader creates a watch session loader
func NewLoader(catalog service.CatalogClient, credentials service.CredentialStore, history service.HistoryStore, logger *logger.Logger) *Loader {
	return &Loader{
		catalog:     catalog,
		credentials: credentials,
		history:     history,
		logger:      logger,
	}
}

// Open loads videoID. A related-videos failure degrades to an empty list; a
// detail failure is returned. The two fetches never cancel each other.
func (l *Loader) Open(ctx context.Context, videoID string) (*domain.WatchSession, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, errors.NewValidationError("video id is required", nil)
	}

	log := l.logger.WithField("video_id", videoID)
	log.Debug("Opening watch session")

	key, err := service.RequireKey(ctx, l.credentials)
	if err != nil {
		return nil, err
	}

	var (
		video   *domain.VideoItem
		related []domain.VideoItem
		g       errgroup.Group
	)

	g.Go(func() error {
		v, err := l.catalog.Video(ctx, key, videoID)
		if err != nil {
			return err
		}
		video = v
		return nil
	})

	g.Go(func() error {
		items, err := l.catalog.Related(ctx, key, videoID)
		if err != nil {
			partial := errors.NewPartialDataError("Related videos unavailable", err)
			log.WithError(partial).Warn("Serving watch session without related videos")
			return nil
		}
		related = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := l.history.Record(ctx, *video); err != nil {
		log.WithError(err).Error("Failed to record watch history")
	}

	session := &domain.WatchSession{
		Video:   *video,
		Related: make([]domain.VideoItem, 0, len(related)),
	}
	for _, item := range related {
		if item.ID != videoID {
			session.Related = append(session.Related, item)
		}
	}

	log.WithField("related", len(session.Related)).Info("Watch session opened")
	return session, nil
}
