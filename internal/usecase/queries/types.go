package queries

import (
	"time"

	"foody/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound       = errs.ErrOfferNotFound
	ErrReservationNotFound = errs.ErrReservationNotFound
	ErrRestaurantNotFound  = errs.ErrRestaurantNotFound
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidStatus       = errs.New("invalid reservation status filter")
)

// OfferView is the read model for an offer. PriceCents is the stored list
// price; PriceNowCents is filled by the query layer at read time.
type OfferView struct {
	ID                 uuid.UUID  `json:"id"`
	RestaurantID       uuid.UUID  `json:"restaurant_id"`
	RestaurantName     string     `json:"restaurant_name,omitempty"`
	Lat                *float64   `json:"lat,omitempty"`
	Lng                *float64   `json:"lng,omitempty"`
	Title              string     `json:"title"`
	PriceCents         int64      `json:"price_cents"`
	OriginalPriceCents *int64     `json:"original_price_cents,omitempty"`
	PriceNowCents      int64      `json:"price_now_cents"`
	QtyTotal           int        `json:"qty_total"`
	QtyLeft            int        `json:"qty_left"`
	ExpiresAt          time.Time  `json:"expires_at"`
	ArchivedAt         *time.Time `json:"archived_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type ReservationView struct {
	ID             uuid.UUID  `json:"id"`
	OfferID        uuid.UUID  `json:"offer_id"`
	OfferTitle     string     `json:"offer_title"`
	RestaurantID   uuid.UUID  `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name"`
	BuyerID        *string    `json:"buyer_id,omitempty"`
	Code           string     `json:"code"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	RedeemedAt     *time.Time `json:"redeemed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID             uuid.UUID  `json:"id"`
	OfferID        uuid.UUID  `json:"offer_id"`
	OfferTitle     string     `json:"offer_title"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	BuyerID        *string    `json:"buyer_id,omitempty"`
	Code           string     `json:"code"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	RedeemedAt     *time.Time `json:"redeemed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type RestaurantView struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Lat        *float64   `json:"lat,omitempty"`
	Lng        *float64   `json:"lng,omitempty"`
	APIKeyHash string     `json:"-"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
