package commands

import (
	"context"

	"foody/internal/domain/restaurant"
	"foody/internal/infra"
	"foody/internal/pkg/apikey"
	"foody/internal/pkg/clock"
	"foody/internal/pkg/errs"
	"foody/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterRestaurantInput struct {
	Name string
	Lat  *float64
	Lng  *float64
}

// RegisterRestaurantResult carries the plain API key. It is never stored and
// cannot be recovered later.
type RegisterRestaurantResult struct {
	Restaurant *restaurant.Restaurant
	APIKey     string
}

type RestaurantCommands interface {
	Register(ctx context.Context, in RegisterRestaurantInput) (*RegisterRestaurantResult, error)
	RotateAPIKey(ctx context.Context, restaurantID uuid.UUID) (string, error)
	Archive(ctx context.Context, restaurantID uuid.UUID) error
}

type KeyGenerator interface {
	Generate() (plain string, hash string, err error)
}

type restaurantCommandsImpl struct {
	uow   shared.UnitOfWork
	keys  KeyGenerator
	clock clock.Clock
}

func NewRestaurantCommands(uow shared.UnitOfWork, keys KeyGenerator, clk clock.Clock) RestaurantCommands {
	return &restaurantCommandsImpl{uow: uow, keys: keys, clock: clk}
}

func (uc *restaurantCommandsImpl) Register(ctx context.Context, in RegisterRestaurantInput) (*RegisterRestaurantResult, error) {
	var loc *restaurant.Location
	switch {
	case in.Lat != nil && in.Lng != nil:
		l, err := restaurant.NewLocation(*in.Lat, *in.Lng)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		loc = &l
	case in.Lat != nil || in.Lng != nil:
		return nil, errs.Mark(errs.New("lat and lng must be given together"), ErrDomainValidation)
	}

	plain, hash, err := uc.keys.Generate()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate api key")
	}

	rest, err := restaurant.NewRestaurant(in.Name, loc, hash, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Restaurants().Create(ctx, tx.DB(), rest)
	})
	if err != nil {
		return nil, markStorage(err)
	}
	return &RegisterRestaurantResult{Restaurant: rest, APIKey: plain}, nil
}

func (uc *restaurantCommandsImpl) RotateAPIKey(ctx context.Context, restaurantID uuid.UUID) (string, error) {
	plain, hash, err := uc.keys.Generate()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate api key")
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Restaurants().UpdateAPIKey(ctx, tx.DB(), restaurantID, hash, uc.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return "", markStorage(err)
	}
	return plain, nil
}

func (uc *restaurantCommandsImpl) Archive(ctx context.Context, restaurantID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Restaurants().Archive(ctx, tx.DB(), restaurantID, uc.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}
		return nil
	})
	return markStorage(err)
}

// apiKeyGenerator adapts the apikey package to KeyGenerator.
type apiKeyGenerator struct{}

func NewAPIKeyGenerator() KeyGenerator {
	return apiKeyGenerator{}
}

func (apiKeyGenerator) Generate() (string, string, error) {
	return apikey.Generate()
}
