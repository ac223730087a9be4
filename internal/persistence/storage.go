package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ticketflow/ticketflow/internal/config"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a durable string key-value store for one profile.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the storage backend selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		logger.Warn("using in-memory storage; session will not survive restarts")
		return NewMemory(), nil
	case config.StorageBackendFile, "":
		return NewFile(cfg.Storage.FilePath, logger)
	case config.StorageBackendRedis:
		return NewRedis(cfg.Redis, cfg.Storage.KeyPrefix, logger), nil
	case config.StorageBackendPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
