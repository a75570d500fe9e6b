package bootstrap

import (
	"coffeebot/internal/infra/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
	),
)
