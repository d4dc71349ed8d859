package feed

import (
	"context"

	"zentube/internal/domain"
	"zentube/internal/service"
	"zentube/pkg/errors"
	"zentube/pkg/logger"
)

// Orchestrator turns feed requests into pages. Each call is independent.
type Orchestrator struct {
	catalog     service.CatalogClient
	credentials service.CredentialStore
	history     service.HistoryStore
	logger      *logger.Logger
}

// NewOrchestrator creates a feed orchestrator
func NewOrchestrator(catalog service.CatalogClient, credentials service.CredentialStore, history service.HistoryStore, logger *logger.Logger) *Orchestrator {
	return &Orchestrator{
		catalog:     catalog,
		credentials: credentials,
		history:     history,
		logger:      logger,
	}
}

// Fetch produces one page. History is served locally; every other mode needs
// a configured API key and issues one listing call, plus one batched
// statistics call for items that arrived without statistics (never for
// trending).
func (o *Orchestrator) Fetch(ctx context.Context, req domain.FeedRequest) (*domain.FeedPage, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error(), map[string]interface{}{"mode": string(req.Mode)})
	}

	log := o.logger.WithFields(map[string]interface{}{
		"mode":     string(req.Mode),
		"category": req.CategoryID,
		"order":    req.Order,
		"cursor":   req.Cursor,
	})
	log.Debug("Fetching feed")

	if req.Mode == domain.FeedModeHistory {
		return o.fetchHistory(ctx)
	}

	key, err := service.RequireKey(ctx, o.credentials)
	if err != nil {
		log.WithError(err).Warn("Feed requested without a usable API key")
		return nil, err
	}

	page, err := o.catalog.ListByMode(ctx, key, req)
	if err != nil {
		return nil, err
	}

	if req.Mode != domain.FeedModeTrending {
		page.Items = o.enrich(ctx, key, page.Items, log)
	}

	log.WithFields(map[string]interface{}{
		"items":    len(page.Items),
		"has_next": page.NextCursor != "",
	}).Info("Feed fetched")
	return page, nil
}

// enrich fills in statistics for items that arrived without them. Failures
// leave the statistics absent.
func (o *Orchestrator) enrich(ctx context.Context, key string, items []domain.VideoItem, log *logger.Logger) []domain.VideoItem {
	missing := make([]int, 0, len(items))
	for i, item := range items {
		if !item.HasStatistics() {
			missing = append(missing, i)
		}
	}
	if len(missing) == 0 {
		return items
	}

	batch := make([]domain.VideoItem, len(missing))
	for j, i := range missing {
		batch[j] = items[i]
	}

	enriched, err := o.catalog.EnrichWithStatistics(ctx, key, batch)
	if err != nil {
		partial := errors.NewPartialDataError("Statistics unavailable", err)
		log.WithError(partial).Warn("Serving feed without statistics")
		return items
	}

	out := make([]domain.VideoItem, len(items))
	copy(out, items)
	for j, i := range missing {
		if j < len(enriched) && enriched[j].ID == out[i].ID {
			out[i].Statistics = enriched[j].Statistics
		}
	}
	return out
}

func (o *Orchestrator) fetchHistory(ctx context.Context) (*domain.FeedPage, error) {
	entries, err := o.history.All(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.VideoItem, len(entries))
	for i, e := range entries {
		items[i] = e.VideoItem
	}
	return &domain.FeedPage{Items: items}, nil
}
