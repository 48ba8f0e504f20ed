package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type OfferSnapshot struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	PriceCents   int64
	QtyTotal     int
	QtyLeft      int
	ExpiresAt    time.Time
	ArchivedAt   *time.Time
	// RestaurantArchivedAt is set when the owning restaurant no longer trades.
	RestaurantArchivedAt *time.Time
}

// ReservableAt reports whether a buyer may still take a unit, ignoring stock.
func (s *OfferSnapshot) ReservableAt(now time.Time) bool {
	return s.ArchivedAt == nil && s.RestaurantArchivedAt == nil && now.Before(s.ExpiresAt)
}

type RestaurantSnapshot struct {
	ID         uuid.UUID
	Name       string
	APIKeyHash string
	ArchivedAt *time.Time
}

type ReservationSnapshot struct {
	ID           uuid.UUID
	OfferID      uuid.UUID
	RestaurantID uuid.UUID
	BuyerID      *string
	Code         string
	Status       string
	ExpiresAt    time.Time
	RedeemedAt   *time.Time
	CreatedAt    time.Time
}

type ReservationRequestRecord struct {
	Key           uuid.UUID
	OfferID       uuid.UUID
	BuyerID       *string
	ReservationID *uuid.UUID
	CreatedAt     time.Time
}
