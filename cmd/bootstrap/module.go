package bootstrap

import (
	"foody/cmd/bootstrap/components"
	"foody/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	TicketModule,
	TelegramModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
