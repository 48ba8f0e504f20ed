package repository

import (
	"context"

	"foody/internal/domain/reservation"
	"foody/internal/infra"
	"foody/internal/infra/repository/converter"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationForUpdateParams) (sqlc.Reservations, error)
	GetReservationByCodeForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationByCodeForUpdateParams) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	_, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res))
	if err != nil {
		// ON CONFLICT (code) DO NOTHING returns no row on a code collision
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("reservation code already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, restaurantID, reservationID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, sqlc.GetReservationForUpdateParams{
		ID:           reservationID,
		RestaurantID: restaurantID,
	})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return converter.ReservationFromInfra(row), nil
}

func (r *ReservationRepository) FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, code reservation.Code) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByCodeForUpdate(ctx, tx, sqlc.GetReservationByCodeForUpdateParams{
		Code:         code.String(),
		RestaurantID: restaurantID,
	})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return converter.ReservationFromInfra(row), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationStatus(ctx, tx, converter.ReservationStatusToInfra(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation is no longer reserved", nil, infra.KindConflict)
	}
	return nil
}

func wrapFindErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load reservation", err)
}
