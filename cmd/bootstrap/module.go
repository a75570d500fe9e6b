package bootstrap

import (
	"coffeebot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	LedgerModule,
	NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
