package bootstrap

import (
	"rental-marketplace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
