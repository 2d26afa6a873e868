package components

import (
	"webshopper/internal/handler"
	"webshopper/internal/handler/api"
	"webshopper/internal/handler/middleware"
	"webshopper/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewKrogerHandler,
		api.NewProductHandler,
		api.NewRecipeHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
