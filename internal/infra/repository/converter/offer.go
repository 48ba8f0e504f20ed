package converter

import (
	"foody/internal/domain/offer"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"
)

func OfferToInfra(o *offer.Offer) sqlc.CreateOfferParams {
	return sqlc.CreateOfferParams{
		ID:                 o.ID(),
		RestaurantID:       o.RestaurantID(),
		Title:              o.Title(),
		PriceCents:         o.PriceCents(),
		OriginalPriceCents: pgconv.Int64PtrToPgtype(o.OriginalPriceCents()),
		QtyTotal:           int32(o.QtyTotal()), // #nosec G115 -- bounded by offer.MaxQuantity
		QtyLeft:            int32(o.QtyLeft()),  // #nosec G115 -- bounded by offer.MaxQuantity
		ExpiresAt:          pgconv.TimeToPgtype(o.ExpiresAt()),
		CreatedAt:          pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OfferFromInfra(row sqlc.Offers) *offer.Offer {
	return offer.ReconstructOffer(
		row.ID,
		row.RestaurantID,
		row.Title,
		row.PriceCents,
		pgconv.Int64PtrFromPgtype(row.OriginalPriceCents),
		int(row.QtyTotal),
		int(row.QtyLeft),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.ArchivedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
