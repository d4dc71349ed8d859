package container

import (
	"context"
	"fmt"
	"net/http"

	"zentube/internal/config"
	"zentube/internal/repository"
	"zentube/internal/service"
	"zentube/internal/service/catalog"
	"zentube/internal/service/credential"
	"zentube/internal/service/feed"
	"zentube/internal/service/history"
	"zentube/internal/service/watch"
	"zentube/pkg/database"
	"zentube/pkg/logger"
	"zentube/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       repository.Store
	RedisClient *redis.Client
	Postgres    *database.PostgresDB
	SQLite      *database.SQLiteDB
	Services    *service.Services
}

// New creates a new dependency injection container. The storage backend is
// opened according to cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.openStore(ctx); err != nil {
		return nil, err
	}

	catalogClient, err := catalog.NewClient(catalog.Options{
		BaseURL:      cfg.YouTubeAPIBaseURL,
		RegionCode:   cfg.RegionCode,
		PageSize:     int64(cfg.FeedPageSize),
		RelatedLimit: int64(cfg.RelatedLimit),
		HTTPClient:   &http.Client{Timeout: cfg.HTTPClientTimeout},
	}, logger.WithField("component", "catalog"))
	if err != nil {
		c.Close()
		return nil, err
	}

	keys := redis.NewKeyBuilder(cfg.Environment)
	credentials := credential.NewStore(c.Store, keys, cfg.YouTubeAPIKey, logger.WithField("component", "credential"))
	historyStore := history.NewStore(c.Store, keys, cfg.HistoryLimit, logger.WithField("component", "history"))

	c.Services = &service.Services{
		Catalog:    catalogClient,
		Credential: credentials,
		History:    historyStore,
		Feed:       feed.NewOrchestrator(catalogClient, credentials, historyStore, logger.WithField("component", "feed")),
		Watch:      watch.NewLoader(catalogClient, credentials, historyStore, logger.WithField("component", "watch")),
	}

	return c, nil
}

func (c *Container) openStore(ctx context.Context) error {
	switch c.Config.StorageBackend {
	case config.BackendRedis:
		client, err := redis.NewClient(c.Config.RedisURL, c.Config.Environment, c.Logger.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		c.RedisClient = client
		c.Store = repository.NewRedisStore(client)
		c.Logger.Info("Redis store initialized successfully")

	case config.BackendPostgres:
		db, err := database.NewPostgresDB(ctx, c.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return err
		}
		c.Postgres = db
		c.Store = repository.NewPostgresStore(db)
		c.Logger.Info("Postgres store initialized successfully")

	default:
		db, err := database.NewSQLiteDB(ctx, c.Config.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		c.SQLite = db
		c.Store = repository.NewSQLiteStore(db)
		c.Logger.WithField("path", db.Path()).Info("SQLite store initialized successfully")
	}
	return nil
}

// Close releases the storage backend
func (c *Container) Close() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.WithError(err).Error("Error closing Redis connection")
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			c.Logger.WithError(err).Error("Error closing sqlite database")
		}
	}
}

// Health checks the storage backend
func (c *Container) Health(ctx context.Context) error {
	return c.Store.Health(ctx)
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}
