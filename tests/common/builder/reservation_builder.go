//go:build unit || e2e

package builder

import (
	"time"

	"foody/internal/domain/reservation"
	reqdto "foody/internal/handler/dto/request"
	"foody/internal/usecase/queries"
	"foody/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	OfferID      uuid.UUID
	RestaurantID uuid.UUID
	BuyerID      *string
	Code         string
	Status       reservation.Status
	Now          time.Time
	ExpiresAt    time.Time
	RedeemedAt   *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	buyer := "tg:100200300"
	return &ReservationBuilder{
		ID:           uuid.New(),
		OfferID:      uuid.New(),
		RestaurantID: uuid.New(),
		BuyerID:      &buyer,
		Code:         "AB12CD34",
		Status:       reservation.StatusReserved,
		Now:          BaseTime,
		ExpiresAt:    BaseTime.Add(3 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) ForOffer(o *OfferBuilder) *ReservationBuilder {
	b.OfferID = o.ID
	b.RestaurantID = o.RestaurantID
	b.ExpiresAt = o.ExpiresAt
	return b
}

func (b *ReservationBuilder) Redeemed() *ReservationBuilder {
	at := b.Now.Add(-time.Minute)
	b.Status = reservation.StatusRedeemed
	b.RedeemedAt = &at
	return b
}

// ExpiredHold keeps the stored status reserved while moving expiry into the past.
func (b *ReservationBuilder) ExpiredHold() *ReservationBuilder {
	b.ExpiresAt = b.Now.Add(-time.Minute)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildOfferSpec() reservation.OfferSpec {
	return reservation.OfferSpec{
		ID:           b.OfferID,
		RestaurantID: b.RestaurantID,
		ExpiresAt:    b.ExpiresAt,
	}
}

func (b *ReservationBuilder) BuildDomain(ttl time.Duration) (*reservation.Reservation, error) {
	return reservation.NewReservation(b.BuildOfferSpec(), b.BuyerID, reservation.Code(b.Code), b.Now, ttl)
}

func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.OfferID, b.RestaurantID, b.BuyerID,
		reservation.Code(b.Code), b.Status, b.ExpiresAt, b.RedeemedAt,
		b.Now.Add(-time.Hour), b.Now.Add(-time.Hour),
	)
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:           b.ID,
		OfferID:      b.OfferID,
		RestaurantID: b.RestaurantID,
		BuyerID:      b.BuyerID,
		Code:         b.Code,
		Status:       b.Status.String(),
		ExpiresAt:    b.ExpiresAt,
		RedeemedAt:   b.RedeemedAt,
		CreatedAt:    b.Now.Add(-time.Hour),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             b.ID,
		OfferID:        b.OfferID,
		OfferTitle:     "Bakery surprise bag",
		RestaurantID:   b.RestaurantID,
		RestaurantName: "Corner Bakery",
		BuyerID:        b.BuyerID,
		Code:           b.Code,
		Status:         b.Status.String(),
		ExpiresAt:      b.ExpiresAt,
		RedeemedAt:     b.RedeemedAt,
		CreatedAt:      b.Now.Add(-time.Hour),
		UpdatedAt:      b.Now.Add(-time.Hour),
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:             b.ID,
		OfferID:        b.OfferID,
		OfferTitle:     "Bakery surprise bag",
		RestaurantName: "Corner Bakery",
		BuyerID:        b.BuyerID,
		Code:           b.Code,
		Status:         b.Status.String(),
		ExpiresAt:      b.ExpiresAt,
		RedeemedAt:     b.RedeemedAt,
		CreatedAt:      b.Now.Add(-time.Hour),
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		OfferID: b.OfferID,
		BuyerID: b.BuyerID,
	}
}
