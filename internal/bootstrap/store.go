package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/InventarioBot_Go/internal/config"
	"github.com/osse101/InventarioBot_Go/internal/database"
	"github.com/osse101/InventarioBot_Go/internal/store"
)

// Storage holds the document store and, for the postgres backend, the pool
// that must be closed on shutdown.
type Storage struct {
	Store store.Store
	Pool  *pgxpool.Pool
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		s.Pool.Close()
	}
}

// InitStore builds the configured store backend. The postgres backend
// connects and applies migrations before returning. A positive cache TTL
// wraps the backend in a CachedStore.
func InitStore(ctx context.Context, cfg *config.Config) (*Storage, error) {
	storage := &Storage{}

	switch cfg.StoreBackend {
	case config.BackendFile:
		storage.Store = store.NewFileStore(cfg.DataFile)

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgMigrateDatabase, err)
		}
		storage.Pool = pool
		storage.Store = store.NewPostgresStore(pool, cfg.DocumentName)

	default:
		return nil, fmt.Errorf("%s %q", ErrMsgUnknownBackend, cfg.StoreBackend)
	}

	if cfg.StoreCacheTTL > 0 {
		slog.Info(LogMsgCacheEnabled, "ttl", cfg.StoreCacheTTL)
		storage.Store = store.NewCachedStore(storage.Store, cfg.StoreKey(), cfg.StoreCacheTTL)
	}

	slog.Info(LogMsgStoreInitialized, "backend", cfg.StoreBackend, "document", cfg.StoreKey())
	return storage, nil
}
