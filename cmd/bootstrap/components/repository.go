package components

import (
	"webshopper/internal/infra/cache"
	repo_impl "webshopper/internal/infra/repository"
	"webshopper/internal/pkg/config"
	"webshopper/internal/usecase"
	"webshopper/internal/usecase/commands"
	"webshopper/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepo)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repo_impl.NewCredentialRepository,
			fx.As(new(usecase.CredentialRepo)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepo)),
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			repo_impl.NewRecipeRepository,
			fx.As(new(commands.RecipeRepo)),
			fx.As(new(queries.RecipeReadStore)),
		),
		fx.Annotate(
			cache.NewSearchCache,
			fx.As(new(queries.SearchCache)),
		),
		fx.Annotate(
			cache.NewStateStore,
			fx.As(new(commands.StateStore)),
		),
	),
)
