package usecase

import (
	"context"
	"errors"

	"foody/internal/pkg/apikey"
	"foody/internal/pkg/errs"
	"foody/internal/usecase/queries"

	"github.com/google/uuid"
)

// MerchantAuthenticator checks the static per-restaurant API key for middleware
type MerchantAuthenticator interface {
	Authenticate(ctx context.Context, restaurantID uuid.UUID, key string) error
}

type merchantAuthenticatorImpl struct {
	restaurants queries.RestaurantQueries
}

func NewMerchantAuthenticator(restaurants queries.RestaurantQueries) MerchantAuthenticator {
	return &merchantAuthenticatorImpl{
		restaurants: restaurants,
	}
}

func (a *merchantAuthenticatorImpl) Authenticate(ctx context.Context, restaurantID uuid.UUID, key string) error {
	if restaurantID == uuid.Nil || key == "" {
		return errs.ErrUnauthorized
	}

	rest, err := a.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, queries.ErrRestaurantNotFound) {
			return errs.ErrUnauthorized
		}
		return err
	}
	if rest.ArchivedAt != nil {
		return errs.ErrUnauthorized
	}

	if err := apikey.Compare(rest.APIKeyHash, key); err != nil {
		if errors.Is(err, apikey.ErrMismatch) || errors.Is(err, apikey.ErrInvalidKey) {
			return errs.ErrUnauthorized
		}
		return err
	}
	return nil
}
