package queries

import (
	"context"

	"foody/internal/infra"

	"github.com/google/uuid"
)

type RestaurantReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
}

type RestaurantQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
}

type restaurantQueriesImpl struct {
	store RestaurantReadStore
}

func NewRestaurantQueries(store RestaurantReadStore) RestaurantQueries {
	return &restaurantQueriesImpl{store: store}
}

func (q *restaurantQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return r, nil
}
