package repository

import (
	"context"
	"time"

	"foody/internal/infra"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"
	"foody/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRequestWriteQueries interface {
	ClaimReservationRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimReservationRequestParams) (int64, error)
	GetReservationRequest(ctx context.Context, db sqlc.DBTX, idempotencyKey uuid.UUID) (sqlc.ReservationRequests, error)
	CompleteReservationRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteReservationRequestParams) error
}

type ReservationRequestRepository struct {
	queries ReservationRequestWriteQueries
}

func NewReservationRequestRepository(queries ReservationRequestWriteQueries) *ReservationRequestRepository {
	return &ReservationRequestRepository{queries: queries}
}

func (r *ReservationRequestRepository) Claim(ctx context.Context, tx sqlc.DBTX, key, offerID uuid.UUID, buyerID *string, now time.Time) (bool, error) {
	n, err := r.queries.ClaimReservationRequest(ctx, tx, sqlc.ClaimReservationRequestParams{
		IdempotencyKey: key,
		OfferID:        offerID,
		BuyerID:        pgconv.StringPtrToPgtype(buyerID),
		CreatedAt:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return n == 1, nil
}

func (r *ReservationRequestRepository) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) (*shared.ReservationRequestRecord, error) {
	row, err := r.queries.GetReservationRequest(ctx, tx, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.ReservationRequestRecord{
		Key:           row.IdempotencyKey,
		OfferID:       row.OfferID,
		BuyerID:       pgconv.StringPtrFromPgtype(row.BuyerID),
		ReservationID: pgconv.UUIDPtrFromPgtype(row.ReservationID),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ReservationRequestRepository) Complete(ctx context.Context, tx sqlc.DBTX, key, reservationID uuid.UUID) error {
	err := r.queries.CompleteReservationRequest(ctx, tx, sqlc.CompleteReservationRequestParams{
		IdempotencyKey: key,
		ReservationID:  pgconv.UUIDToPgtype(reservationID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}
