package components

import (
	"webshopper/internal/pkg/clock"
	"webshopper/internal/usecase"
	"webshopper/internal/usecase/commands"
	"webshopper/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		usecase.NewCredentialService,
		fx.As(new(usecase.CredentialService)),
		fx.As(new(queries.CredentialSource)),
		fx.As(new(commands.CredentialPort)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewConnectCommands,
		commands.NewCatalogCommands,
		commands.NewRecipeCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewRecipeQueries,
		queries.NewSearchQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
