package converter

import (
	"foody/internal/domain/reservation"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:           res.ID(),
		OfferID:      res.OfferID(),
		RestaurantID: res.RestaurantID(),
		BuyerID:      pgconv.StringPtrToPgtype(res.BuyerID()),
		Code:         res.Code().String(),
		Status:       res.Status().String(),
		ExpiresAt:    pgconv.TimeToPgtype(res.ExpiresAt()),
		CreatedAt:    pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationStatusToInfra(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		Status:     res.Status().String(),
		RedeemedAt: pgconv.TimePtrToPgtype(res.RedeemedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
		ID:         res.ID(),
	}
}

func ReservationFromInfra(row sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.OfferID,
		row.RestaurantID,
		pgconv.StringPtrFromPgtype(row.BuyerID),
		reservation.Code(row.Code),
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.RedeemedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
