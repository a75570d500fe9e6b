package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"coffeebot/internal/infra/ledger"
	"coffeebot/internal/pkg/config"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewLedgerStore,
	),
	fx.Invoke(ensureLedger),
)

func NewLedgerStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (ledger.Store, error) {
	switch cfg.Ledger.Backend {
	case "postgres":
		pool, cleanup, err := ledger.ConnectPostgres(context.Background(), cfg.Ledger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("ledger store initialized", "backend", "postgres")
		return ledger.NewPostgresStore(pool), nil

	case "pebble":
		store, cleanup, err := ledger.NewPebbleStore(cfg.Ledger.PebblePath)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("ledger store initialized", "backend", "pebble", "path", cfg.Ledger.PebblePath)
		return store, nil

	case "memory":
		logger.Warn("ledger store initialized", "backend", "memory", "note", "records are not durable")
		return ledger.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
	}
}

// ensureLedger provisions the store once at startup so the request path can
// assume it exists.
func ensureLedger(lc fx.Lifecycle, store ledger.Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.Ensure(ctx)
		},
	})
}
