package readstore

import (
	"context"
	"time"

	"foody/internal/infra"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"
	"foody/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferReadQueries interface {
	GetOfferByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Offers, error)
	GetActiveOfferByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetActiveOfferByIDRow, error)
	ListActiveOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveOffersParams) ([]sqlc.ListActiveOffersRow, error)
	ListOffersByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]sqlc.Offers, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID returns the offer whatever its state (archived, expired, sold out).
func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	row, err := r.queries.GetOfferByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}
	return offerRowToView(row), nil
}

func (r *OfferReadStore) FindActiveByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	row, err := r.queries.GetActiveOfferByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}
	return &queries.OfferView{
		ID:                 row.ID,
		RestaurantID:       row.RestaurantID,
		RestaurantName:     row.RestaurantName,
		Lat:                pgconv.Float64PtrFromPgtype(row.Lat),
		Lng:                pgconv.Float64PtrFromPgtype(row.Lng),
		Title:              row.Title,
		PriceCents:         row.PriceCents,
		OriginalPriceCents: pgconv.Int64PtrFromPgtype(row.OriginalPriceCents),
		QtyTotal:           int(row.QtyTotal),
		QtyLeft:            int(row.QtyLeft),
		ExpiresAt:          pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *OfferReadStore) ListActive(ctx context.Context, now time.Time, restaurantID *uuid.UUID, limit int32) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListActiveOffers(ctx, r.db, sqlc.ListActiveOffersParams{
		Now:          pgconv.TimeToPgtype(now),
		RestaurantID: pgconv.UUIDPtrToPgtype(restaurantID),
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active offers", err)
	}

	result := make([]*queries.OfferView, len(rows))
	for i, row := range rows {
		result[i] = &queries.OfferView{
			ID:                 row.ID,
			RestaurantID:       row.RestaurantID,
			RestaurantName:     row.RestaurantName,
			Lat:                pgconv.Float64PtrFromPgtype(row.Lat),
			Lng:                pgconv.Float64PtrFromPgtype(row.Lng),
			Title:              row.Title,
			PriceCents:         row.PriceCents,
			OriginalPriceCents: pgconv.Int64PtrFromPgtype(row.OriginalPriceCents),
			QtyTotal:           int(row.QtyTotal),
			QtyLeft:            int(row.QtyLeft),
			ExpiresAt:          pgconv.TimeFromPgtype(row.ExpiresAt),
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *OfferReadStore) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListOffersByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant offers", err)
	}

	result := make([]*queries.OfferView, len(rows))
	for i, row := range rows {
		result[i] = offerRowToView(row)
	}
	return result, nil
}

func offerRowToView(row sqlc.Offers) *queries.OfferView {
	return &queries.OfferView{
		ID:                 row.ID,
		RestaurantID:       row.RestaurantID,
		Title:              row.Title,
		PriceCents:         row.PriceCents,
		OriginalPriceCents: pgconv.Int64PtrFromPgtype(row.OriginalPriceCents),
		QtyTotal:           int(row.QtyTotal),
		QtyLeft:            int(row.QtyLeft),
		ExpiresAt:          pgconv.TimeFromPgtype(row.ExpiresAt),
		ArchivedAt:         pgconv.TimePtrFromPgtype(row.ArchivedAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
