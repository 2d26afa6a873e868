package bootstrap

import (
	"webshopper/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	KrogerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
