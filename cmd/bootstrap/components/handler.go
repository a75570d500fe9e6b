package components

import (
	"coffeebot/internal/handler"
	"coffeebot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewBotHandler,
	),
	fx.Invoke(handler.NewRouter),
)
