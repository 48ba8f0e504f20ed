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

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationsByRestaurantFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByRestaurantFirstPageParams) ([]sqlc.ListReservationsByRestaurantFirstPageRow, error)
	ListReservationsByRestaurantKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByRestaurantKeysetParams) ([]sqlc.ListReservationsByRestaurantKeysetRow, error)
	ListReservationsByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByBuyerFirstPageParams) ([]sqlc.ListReservationsByBuyerFirstPageRow, error)
	ListReservationsByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByBuyerKeysetParams) ([]sqlc.ListReservationsByBuyerKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &queries.ReservationView{
		ID:             row.ID,
		OfferID:        row.OfferID,
		OfferTitle:     row.OfferTitle,
		RestaurantID:   row.RestaurantID,
		RestaurantName: row.RestaurantName,
		BuyerID:        pgconv.StringPtrFromPgtype(row.BuyerID),
		Code:           row.Code,
		Status:         row.Status,
		ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
		RedeemedAt:     pgconv.TimePtrFromPgtype(row.RedeemedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReservationReadStore) FindByRestaurantFirstPage(ctx context.Context, restaurantID uuid.UUID, status *string, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByRestaurantFirstPage(ctx, r.db, sqlc.ListReservationsByRestaurantFirstPageParams{
		RestaurantID: restaurantID,
		Status:       pgconv.StringPtrToPgtype(status),
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find restaurant reservations first page", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:         row.ID,
			OfferID:    row.OfferID,
			OfferTitle: row.OfferTitle,
			BuyerID:    pgconv.StringPtrFromPgtype(row.BuyerID),
			Code:       row.Code,
			Status:     row.Status,
			ExpiresAt:  pgconv.TimeFromPgtype(row.ExpiresAt),
			RedeemedAt: pgconv.TimePtrFromPgtype(row.RedeemedAt),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindByRestaurantKeyset(ctx context.Context, restaurantID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByRestaurantKeyset(ctx, r.db, sqlc.ListReservationsByRestaurantKeysetParams{
		RestaurantID: restaurantID,
		Status:       pgconv.StringPtrToPgtype(status),
		CreatedAt:    pgconv.TimeToPgtype(lastCreatedAt),
		ID:           lastID,
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find restaurant reservations keyset", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:         row.ID,
			OfferID:    row.OfferID,
			OfferTitle: row.OfferTitle,
			BuyerID:    pgconv.StringPtrFromPgtype(row.BuyerID),
			Code:       row.Code,
			Status:     row.Status,
			ExpiresAt:  pgconv.TimeFromPgtype(row.ExpiresAt),
			RedeemedAt: pgconv.TimePtrFromPgtype(row.RedeemedAt),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindByBuyerFirstPage(ctx context.Context, buyerID string, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByBuyerFirstPage(ctx, r.db, sqlc.ListReservationsByBuyerFirstPageParams{
		BuyerID: buyerID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find buyer reservations first page", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:             row.ID,
			OfferID:        row.OfferID,
			OfferTitle:     row.OfferTitle,
			RestaurantName: row.RestaurantName,
			Code:           row.Code,
			Status:         row.Status,
			ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
			RedeemedAt:     pgconv.TimePtrFromPgtype(row.RedeemedAt),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindByBuyerKeyset(ctx context.Context, buyerID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByBuyerKeyset(ctx, r.db, sqlc.ListReservationsByBuyerKeysetParams{
		BuyerID:   buyerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find buyer reservations keyset", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:             row.ID,
			OfferID:        row.OfferID,
			OfferTitle:     row.OfferTitle,
			RestaurantName: row.RestaurantName,
			Code:           row.Code,
			Status:         row.Status,
			ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
			RedeemedAt:     pgconv.TimePtrFromPgtype(row.RedeemedAt),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
