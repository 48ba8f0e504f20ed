package components

import (
	"foody/internal/domain/pricing"
	"foody/internal/domain/reservation"
	"foody/internal/pkg/clock"
	"foody/internal/pkg/config"
	"foody/internal/usecase"
	"foody/internal/usecase/commands"
	"foody/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseAuthModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(pricing.Calculator)),
	),
	fx.Annotate(
		NewCodeGenerator,
		fx.As(new(reservation.CodeGenerator)),
	),
	commands.NewAPIKeyGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewOfferCommands,
		commands.NewRestaurantCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
		queries.NewReservationQueries,
		queries.NewRestaurantQueries,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewMerchantAuthenticator,
	),
)

func NewPriceCalculator(cfg config.Config) (*pricing.LinearCalculator, error) {
	return pricing.NewLinearCalculator(cfg.Pricing.Window, cfg.Pricing.DiscountFloor, cfg.Pricing.DiscountCeiling)
}

func NewCodeGenerator(cfg config.Config) (*reservation.RandomCodeGenerator, error) {
	return reservation.NewRandomCodeGenerator(cfg.Reservation.CodeLength)
}
