package response

import (
	"time"

	"foody/internal/domain/offer"
	"foody/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferResponse struct {
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

type OfferListResponse struct {
	Offers []*OfferResponse `json:"offers"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	var res OfferResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromOfferViews(views []*queries.OfferView) *OfferListResponse {
	offers := make([]*OfferResponse, len(views))
	for i, v := range views {
		offers[i] = FromOfferView(v)
	}
	return &OfferListResponse{Offers: offers}
}

// FromOffer maps a freshly written offer; copier reads the entity getters.
func FromOffer(o *offer.Offer, priceNowCents int64) *OfferResponse {
	var res OfferResponse
	_ = copier.Copy(&res, o)
	res.PriceNowCents = priceNowCents
	return &res
}
