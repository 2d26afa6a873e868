package bootstrap

import (
	"webshopper/internal/infra/kroger"
	"webshopper/internal/pkg/config"
	"webshopper/internal/usecase"
	"webshopper/internal/usecase/commands"
	"webshopper/internal/usecase/queries"

	"go.uber.org/fx"
)

var KrogerModule = fx.Module("kroger",
	fx.Provide(
		fx.Annotate(
			NewKrogerClient,
			fx.As(new(usecase.TokenRefresher)),
			fx.As(new(commands.RetailerConnector)),
			fx.As(new(commands.CartSubmitter)),
			fx.As(new(queries.RetailerSearcher)),
		),
	),
)

func NewKrogerClient(cfg config.Config) *kroger.Client {
	return kroger.NewClient(cfg.Kroger)
}
