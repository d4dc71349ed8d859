package history

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"zentube/internal/domain"
	"zentube/internal/repository"
	"zentube/pkg/errors"
	"zentube/pkg/logger"
	"zentube/pkg/redis"
)

// DefaultLimit caps the number of remembered videos
const DefaultLimit = 50

// Store keeps recently watched videos as one JSON array, most recent first
type Store struct {
	store  repository.Store
	key    string
	limit  int
	now    func() time.Time
	logger *logger.Logger

	// serializes read-modify-write cycles within this process
	mu sync.Mutex
}

// NewStore creates a history store holding at most limit entries
func NewStore(store repository.Store, keys *redis.KeyBuilder, limit int, logger *logger.Logger) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		store:  store,
		key:    keys.KeyWatchHistory(),
		limit:  limit,
		now:    time.Now,
		logger: logger,
	}
}

// Record moves item to the front, dropping any older entry with the same id
// and truncating to the limit.
func (s *Store) Record(ctx context.Context, item domain.VideoItem) error {
	if item.ID == "" {
		return errors.NewValidationError("video id is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read(ctx)
	if err != nil {
		return err
	}

	next := make([]domain.HistoryEntry, 0, len(entries)+1)
	next = append(next, domain.HistoryEntry{VideoItem: item, WatchedAt: s.now().UTC()})
	for _, e := range entries {
		if len(next) >= s.limit {
			break
		}
		if e.ID == item.ID {
			continue
		}
		next = append(next, e)
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return errors.NewInternalError("Failed to encode history", err)
	}
	if err := s.store.Set(ctx, s.key, string(raw)); err != nil {
		s.logger.WithError(err).Error("Failed to persist history")
		return errors.NewInternalError("Failed to save history", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"video_id": item.ID,
		"entries":  len(next),
	}).Debug("Recorded history entry")
	return nil
}

// All returns the history most recent first. It is empty when never written.
func (s *Store) All(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.read(ctx)
}

// Clear forgets the whole history
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		s.logger.WithError(err).Error("Failed to clear history")
		return errors.NewInternalError("Failed to clear history", err)
	}
	return nil
}

func (s *Store) read(ctx context.Context) ([]domain.HistoryEntry, error) {
	raw, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.WithError(err).Error("Failed to read history")
		return nil, errors.NewInternalError("Failed to read history", err)
	}
	if !found || raw == "" {
		return []domain.HistoryEntry{}, nil
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.WithError(err).Warn("Discarding unreadable history")
		return []domain.HistoryEntry{}, nil
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	return entries, nil
}
