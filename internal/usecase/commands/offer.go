package commands

import (
	"context"
	"time"

	"foody/internal/domain/offer"
	"foody/internal/infra"
	"foody/internal/pkg/clock"
	"foody/internal/pkg/errs"
	"foody/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateOfferInput struct {
	Title              string
	PriceCents         int64
	OriginalPriceCents *int64
	Quantity           int
	ExpiresAt          time.Time
}

type OfferCommands interface {
	Create(ctx context.Context, restaurantID uuid.UUID, in CreateOfferInput) (*offer.Offer, error)
	// Archive hides an offer from buyers. Archiving twice keeps the first timestamp.
	Archive(ctx context.Context, restaurantID, offerID uuid.UUID) (*offer.Offer, error)
	// AdjustQuantity sets the remaining quantity, bounded by the offer total.
	AdjustQuantity(ctx context.Context, restaurantID, offerID uuid.UUID, qtyLeft int) (*offer.Offer, error)
}

type offerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clk}
}

func (uc *offerCommandsImpl) Create(ctx context.Context, restaurantID uuid.UUID, in CreateOfferInput) (*offer.Offer, error) {
	o, err := offer.NewOffer(restaurantID, in.Title, in.PriceCents, in.OriginalPriceCents, in.Quantity, in.ExpiresAt, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rest, err := tx.Reads().RestaurantByID(ctx, restaurantID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}
		if rest.ArchivedAt != nil {
			return ErrUnauthorized
		}
		return tx.Offers().Create(ctx, tx.DB(), o)
	})
	if err != nil {
		return nil, markStorage(err)
	}
	return o, nil
}

func (uc *offerCommandsImpl) Archive(ctx context.Context, restaurantID, offerID uuid.UUID) (*offer.Offer, error) {
	var archived *offer.Offer
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().Archive(ctx, tx.DB(), restaurantID, offerID, uc.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return err
		}
		archived = o
		return nil
	})
	if err != nil {
		return nil, markStorage(err)
	}
	return archived, nil
}

func (uc *offerCommandsImpl) AdjustQuantity(ctx context.Context, restaurantID, offerID uuid.UUID, qtyLeft int) (*offer.Offer, error) {
	var updated *offer.Offer
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().OfferByID(ctx, offerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return err
		}
		if snap.RestaurantID != restaurantID {
			return ErrOfferNotFound
		}
		if snap.ArchivedAt != nil {
			return ErrOfferUnavailable
		}
		if err := offer.ValidateRemaining(qtyLeft, snap.QtyTotal); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		o, err := tx.Offers().SetRemaining(ctx, tx.DB(), restaurantID, offerID, qtyLeft, uc.clock.Now())
		if err != nil {
			// archived between the read and the update
			if infra.IsKind(err, infra.KindConflict) {
				return ErrOfferUnavailable
			}
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, markStorage(err)
	}
	return updated, nil
}
