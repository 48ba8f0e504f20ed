package components

import (
	"foody/internal/handler"
	"foody/internal/handler/api"
	"foody/internal/handler/middleware"
	"foody/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewReservationHandler,
		api.NewRestaurantHandler,
		api.NewBotHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}
