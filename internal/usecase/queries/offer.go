package queries

import (
	"context"
	"time"

	"foody/internal/domain/pricing"
	"foody/internal/infra"
	"foody/internal/pkg/clock"

	"github.com/google/uuid"
)

const defaultOfferListLimit = 100

type OfferReadStore interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	ListActive(ctx context.Context, now time.Time, restaurantID *uuid.UUID, limit int32) ([]*OfferView, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*OfferView, error)
}

type OfferQueries interface {
	// ListActive returns offers that can still be reserved, soonest expiry first.
	ListActive(ctx context.Context, restaurantID *uuid.UUID, limit int) ([]*OfferView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*OfferView, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
	calc  pricing.Calculator
	clock clock.Clock
}

func NewOfferQueries(store OfferReadStore, calc pricing.Calculator, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{
		store: store,
		calc:  calc,
		clock: clk,
	}
}

func (q *offerQueriesImpl) ListActive(ctx context.Context, restaurantID *uuid.UUID, limit int) ([]*OfferView, error) {
	if limit <= 0 {
		limit = defaultOfferListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	now := q.clock.Now()
	offers, err := q.store.ListActive(ctx, now, restaurantID, int32(limit)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, err
	}
	q.applyLivePrice(now, offers...)
	return offers, nil
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	o, err := q.store.FindActiveByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	q.applyLivePrice(q.clock.Now(), o)
	return o, nil
}

func (q *offerQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*OfferView, error) {
	offers, err := q.store.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	q.applyLivePrice(q.clock.Now(), offers...)
	return offers, nil
}

func (q *offerQueriesImpl) applyLivePrice(now time.Time, offers ...*OfferView) {
	for _, o := range offers {
		o.PriceNowCents = q.calc.PriceNowCents(now, o.ExpiresAt, o.PriceCents)
	}
}
