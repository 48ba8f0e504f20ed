package request

import (
	"strings"

	"foody/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	OfferID uuid.UUID `json:"offer_id" binding:"required"`
	BuyerID *string   `json:"buyer_id,omitempty" binding:"omitempty,max=128"`
}

// GetBuyerID treats a blank buyer id as anonymous.
func (r CreateReservationRequest) GetBuyerID() *string {
	if r.BuyerID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.BuyerID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateReservationRequest) ToInput(idempotencyKey *uuid.UUID) commands.ReserveInput {
	return commands.ReserveInput{
		OfferID:        r.OfferID,
		BuyerID:        r.GetBuyerID(),
		IdempotencyKey: idempotencyKey,
	}
}

// RedeemRequest accepts either a code (optionally with the reservation id)
// or the signed ticket scanned from the buyer's QR code.
type RedeemRequest struct {
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	Code          string     `json:"code,omitempty" binding:"omitempty,max=32"`
	Ticket        string     `json:"ticket,omitempty" binding:"omitempty,max=2048"`
}

func (r RedeemRequest) ToInput() commands.RedeemInput {
	return commands.RedeemInput{
		ReservationID: r.ReservationID,
		Code:          strings.TrimSpace(r.Code),
		Ticket:        strings.TrimSpace(r.Ticket),
	}
}

type RedeemByIDRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}

func (r RedeemByIDRequest) ToInput(reservationID uuid.UUID) commands.RedeemInput {
	return commands.RedeemInput{
		ReservationID: &reservationID,
		Code:          strings.TrimSpace(r.Code),
	}
}
