package request

import (
	"time"

	"foody/internal/usecase/commands"
)

type CreateOfferRequest struct {
	Title              string    `json:"title" binding:"required,max=255"`
	PriceCents         *int64    `json:"price_cents" binding:"required,min=0"`
	OriginalPriceCents *int64    `json:"original_price_cents,omitempty" binding:"omitempty,min=0"`
	Quantity           int       `json:"quantity" binding:"required,min=1,max=10000"`
	ExpiresAt          time.Time `json:"expires_at" binding:"required"`
}

func (r CreateOfferRequest) ToInput() commands.CreateOfferInput {
	var price int64
	if r.PriceCents != nil {
		price = *r.PriceCents
	}
	return commands.CreateOfferInput{
		Title:              r.Title,
		PriceCents:         price,
		OriginalPriceCents: r.OriginalPriceCents,
		Quantity:           r.Quantity,
		ExpiresAt:          r.ExpiresAt,
	}
}

type AdjustQuantityRequest struct {
	QtyLeft *int `json:"qty_left" binding:"required,min=0,max=10000"`
}
