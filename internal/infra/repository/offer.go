package repository

import (
	"context"
	"time"

	"foody/internal/domain/offer"
	"foody/internal/infra"
	"foody/internal/infra/repository/converter"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferParams) (sqlc.Offers, error)
	DecrementOfferQty(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int32, error)
	SetOfferQtyLeft(ctx context.Context, db sqlc.DBTX, arg sqlc.SetOfferQtyLeftParams) (sqlc.Offers, error)
	ArchiveOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.ArchiveOfferParams) (sqlc.Offers, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
}

func NewOfferRepository(queries OfferWriteQueries) *OfferRepository {
	return &OfferRepository{queries: queries}
}

func (r *OfferRepository) Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error {
	if _, err := r.queries.CreateOffer(ctx, tx, converter.OfferToInfra(o)); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) DecrementRemaining(ctx context.Context, tx sqlc.DBTX, offerID uuid.UUID) (int, error) {
	left, err := r.queries.DecrementOfferQty(ctx, tx, offerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("offer has no remaining quantity", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to decrement offer quantity", err)
	}
	return int(left), nil
}

func (r *OfferRepository) SetRemaining(ctx context.Context, tx sqlc.DBTX, restaurantID, offerID uuid.UUID, qtyLeft int, now time.Time) (*offer.Offer, error) {
	row, err := r.queries.SetOfferQtyLeft(ctx, tx, sqlc.SetOfferQtyLeftParams{
		QtyLeft:      int32(qtyLeft), // #nosec G115 -- validated against qty_total by the caller
		UpdatedAt:    pgconv.TimeToPgtype(now),
		ID:           offerID,
		RestaurantID: restaurantID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer quantity not updated", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to set offer quantity", err)
	}
	return converter.OfferFromInfra(row), nil
}

func (r *OfferRepository) Archive(ctx context.Context, tx sqlc.DBTX, restaurantID, offerID uuid.UUID, now time.Time) (*offer.Offer, error) {
	row, err := r.queries.ArchiveOffer(ctx, tx, sqlc.ArchiveOfferParams{
		ArchivedAt:   pgconv.TimeToPgtype(now),
		ID:           offerID,
		RestaurantID: restaurantID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to archive offer", err)
	}
	return converter.OfferFromInfra(row), nil
}
