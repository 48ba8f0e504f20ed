package readstore

import (
	"context"

	"foody/internal/infra"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"
	"foody/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestaurantReadQueries interface {
	GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Restaurants, error)
}

type RestaurantReadStore struct {
	queries RestaurantReadQueries
	db      sqlc.DBTX
}

func NewRestaurantReadStore(queries RestaurantReadQueries, db sqlc.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant by ID", err)
	}

	return &queries.RestaurantView{
		ID:         row.ID,
		Name:       row.Name,
		Lat:        pgconv.Float64PtrFromPgtype(row.Lat),
		Lng:        pgconv.Float64PtrFromPgtype(row.Lng),
		APIKeyHash: row.ApiKeyHash,
		ArchivedAt: pgconv.TimePtrFromPgtype(row.ArchivedAt),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
