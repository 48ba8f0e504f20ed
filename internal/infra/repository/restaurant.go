package repository

import (
	"context"
	"time"

	"foody/internal/domain/restaurant"
	"foody/internal/infra"
	"foody/internal/infra/repository/converter"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RestaurantWriteQueries interface {
	CreateRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRestaurantParams) (sqlc.Restaurants, error)
	UpdateRestaurantAPIKey(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRestaurantAPIKeyParams) (int64, error)
	ArchiveRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.ArchiveRestaurantParams) (int64, error)
}

type RestaurantRepository struct {
	queries RestaurantWriteQueries
}

func NewRestaurantRepository(queries RestaurantWriteQueries) *RestaurantRepository {
	return &RestaurantRepository{queries: queries}
}

func (r *RestaurantRepository) Create(ctx context.Context, tx sqlc.DBTX, rest *restaurant.Restaurant) error {
	if _, err := r.queries.CreateRestaurant(ctx, tx, converter.RestaurantToInfra(rest)); err != nil {
		return infra.WrapRepoErr("failed to create restaurant", err)
	}
	return nil
}

func (r *RestaurantRepository) UpdateAPIKey(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, apiKeyHash string, now time.Time) error {
	n, err := r.queries.UpdateRestaurantAPIKey(ctx, tx, sqlc.UpdateRestaurantAPIKeyParams{
		ID:         restaurantID,
		ApiKeyHash: apiKeyHash,
		UpdatedAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant api key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RestaurantRepository) Archive(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, now time.Time) error {
	n, err := r.queries.ArchiveRestaurant(ctx, tx, sqlc.ArchiveRestaurantParams{
		ArchivedAt: pgconv.TimeToPgtype(now),
		ID:         restaurantID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to archive restaurant", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}
