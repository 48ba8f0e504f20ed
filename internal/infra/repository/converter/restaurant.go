package converter

import (
	"foody/internal/domain/restaurant"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func RestaurantToInfra(r *restaurant.Restaurant) sqlc.CreateRestaurantParams {
	params := sqlc.CreateRestaurantParams{
		ID:         r.ID(),
		Name:       r.Name(),
		ApiKeyHash: r.APIKeyHash(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
	if loc := r.Location(); loc != nil {
		params.Lat = pgtype.Float8{Float64: loc.Lat(), Valid: true}
		params.Lng = pgtype.Float8{Float64: loc.Lng(), Valid: true}
	}
	return params
}
