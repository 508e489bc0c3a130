package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"folio-api/internal/infra/kvstore"
	"folio-api/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore builds the key-value store backend selected by STORE_DRIVER.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	ctx := context.Background()

	var (
		store kvstore.Store
		err   error
	)
	switch cfg.Store.Driver {
	case "postgres":
		store, err = kvstore.NewPostgresStore(ctx, cfg.Store.BuildPostgresDSN(), logger)
	case "redis":
		store, err = kvstore.NewRedisStore(ctx, cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB, logger)
	case "memory":
		store = kvstore.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			store.Close()
			return nil
		},
	})

	return store, nil
}
