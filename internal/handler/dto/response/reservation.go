package response

import (
	"time"

	"foody/internal/domain/reservation"
	"foody/internal/usecase/commands"
	"foody/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	OfferID        uuid.UUID  `json:"offer_id"`
	OfferTitle     string     `json:"offer_title,omitempty"`
	RestaurantID   uuid.UUID  `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	BuyerID        *string    `json:"buyer_id,omitempty"`
	Code           string     `json:"code"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	RedeemedAt     *time.Time `json:"redeemed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ReserveResponse is returned to the buyer. Ticket is the QR payload.
type ReserveResponse struct {
	ReservationResponse
	PriceNowCents int64  `json:"price_now_cents"`
	Ticket        string `json:"ticket,omitempty"`
}

type RedeemResponse struct {
	ReservationResponse
	AlreadyRedeemed bool `json:"already_redeemed"`
}

type ReservationListItemResponse struct {
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

type ReservationListResponse struct {
	Reservations []*ReservationListItemResponse `json:"reservations"`
	NextCursor   string                         `json:"next_cursor,omitempty"`
}

func FromReservation(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID(),
		OfferID:      r.OfferID(),
		RestaurantID: r.RestaurantID(),
		BuyerID:      r.BuyerID(),
		Code:         r.Code().String(),
		Status:       r.Status().String(),
		ExpiresAt:    r.ExpiresAt(),
		RedeemedAt:   r.RedeemedAt(),
		CreatedAt:    r.CreatedAt(),
	}
}

func FromReserveResult(res *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		ReservationResponse: FromReservation(res.Reservation),
		PriceNowCents:       res.PriceNowCents,
		Ticket:              res.Ticket,
	}
}

func FromRedeemResult(res *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		ReservationResponse: FromReservation(res.Reservation),
		AlreadyRedeemed:     res.AlreadyRedeemed,
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var res ReservationResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	list := make([]*ReservationListItemResponse, len(items))
	for i, it := range items {
		var item ReservationListItemResponse
		_ = copier.Copy(&item, it)
		list[i] = &item
	}
	res := &ReservationListResponse{Reservations: list}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
