package bootstrap

import (
	"foody/internal/pkg/config"
	"foody/internal/pkg/ticket"
	"foody/internal/usecase/commands"

	"go.uber.org/fx"
)

var TicketModule = fx.Module("ticket",
	fx.Provide(
		fx.Annotate(
			NewTicketService,
			fx.As(new(commands.TicketService)),
		),
	),
)

func NewTicketService(cfg config.Config) *ticket.Service {
	return ticket.NewService(cfg.Reservation.TicketSecret, cfg.Reservation.TicketIssuer)
}
