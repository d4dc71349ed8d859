package credential

import (
	"context"
	"strings"

	"zentube/internal/repository"
	"zentube/pkg/errors"
	"zentube/pkg/logger"
	"zentube/pkg/redis"
)

// Store persists the catalog API key. A persisted key wins over the
// configured default.
type Store struct {
	store      repository.Store
	key        string
	defaultKey string
	logger     *logger.Logger
}

// NewStore creates a credential store. defaultKey is used while no key is persisted.
func NewStore(store repository.Store, keys *redis.KeyBuilder, defaultKey string, logger *logger.Logger) *Store {
	return &Store{
		store:      store,
		key:        keys.KeyCredential(),
		defaultKey: strings.TrimSpace(defaultKey),
		logger:     logger,
	}
}

// Get returns the persisted key, falling back to the default. Whitespace-only
// values count as absent. It returns "" when nothing is configured.
func (s *Store) Get(ctx context.Context) (string, error) {
	value, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.WithError(err).Error("Failed to read credential")
		return "", errors.NewInternalError("Failed to read API key", err)
	}

	if found {
		if v := strings.TrimSpace(value); v != "" {
			return v, nil
		}
	}
	return s.defaultKey, nil
}

// Set persists the trimmed value. Empty input is rejected without writing.
func (s *Store) Set(ctx context.Context, value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return errors.NewValidationError("API key must not be empty", nil)
	}

	if err := s.store.Set(ctx, s.key, v); err != nil {
		s.logger.WithError(err).Error("Failed to persist credential")
		return errors.NewInternalError("Failed to save API key", err)
	}

	s.logger.Info("API key configured")
	return nil
}

// Clear removes the persisted key
func (s *Store) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		s.logger.WithError(err).Error("Failed to clear credential")
		return errors.NewInternalError("Failed to clear API key", err)
	}

	s.logger.Info("API key cleared")
	return nil
}

// IsConfigured reports whether Get yields a non-empty key
func (s *Store) IsConfigured(ctx context.Context) bool {
	v, err := s.Get(ctx)
	return err == nil && v != ""
}
