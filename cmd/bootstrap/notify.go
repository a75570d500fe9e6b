package bootstrap

import (
	"context"
	"log/slog"

	"coffeebot/internal/infra/notify"
	"coffeebot/internal/pkg/config"
	"coffeebot/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewFormatter,
		NewBaristaNotifier,
	),
)

func NewFormatter(cfg config.Config) *notify.Formatter {
	return notify.NewFormatter(cfg.Quota.Location())
}

func NewBaristaNotifier(lc fx.Lifecycle, cfg config.Config, formatter *notify.Formatter, logger *slog.Logger) (commands.BaristaNotifier, error) {
	if cfg.Notify.AMQPURL == "" {
		logger.Info("barista notifier disabled: no AMQP URL configured")
		return notify.NewNopPublisher(), nil
	}

	conn, err := notify.Connect(cfg.Notify)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})

	logger.Info("barista notifier initialized", "exchange", cfg.Notify.Exchange)
	return notify.NewPublisher(conn, cfg.Notify, formatter), nil
}
