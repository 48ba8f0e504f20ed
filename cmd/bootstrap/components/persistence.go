package components

import (
	"foody/internal/infra/readstore"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/infra/uow"
	"foody/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Offer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OfferReadQueries)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Restaurant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RestaurantReadQueries)),
		),
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
