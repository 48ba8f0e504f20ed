package bootstrap

import (
	"context"
	"log/slog"

	"foody/internal/handler/middleware"
	"foody/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(lc fx.Lifecycle, cfg config.Config) *middleware.Logger {
	logger := middleware.NewLogger(cfg.Log)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return logger.Close()
		},
	})
	return logger
}

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}
