//go:build unit || e2e

package builder

import (
	"time"

	"foody/internal/domain/offer"
	reqdto "foody/internal/handler/dto/request"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/usecase/queries"
	"foody/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BaseTime is the fixed "now" builders use unless told otherwise.
var BaseTime = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

type OfferBuilder struct {
	ID                 uuid.UUID
	RestaurantID       uuid.UUID
	Title              string
	PriceCents         int64
	OriginalPriceCents *int64
	QtyTotal           int
	QtyLeft            int
	Now                time.Time
	ExpiresAt          time.Time
	ArchivedAt         *time.Time

	RestaurantArchivedAt *time.Time
}

func NewOfferBuilder() *OfferBuilder {
	original := int64(1500)
	return &OfferBuilder{
		ID:                 uuid.New(),
		RestaurantID:       uuid.New(),
		Title:              "Bakery surprise bag",
		PriceCents:         1000,
		OriginalPriceCents: &original,
		QtyTotal:           5,
		QtyLeft:            5,
		Now:                BaseTime,
		ExpiresAt:          BaseTime.Add(3 * time.Hour),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithQuantity(total, left int) *OfferBuilder {
	b.QtyTotal = total
	b.QtyLeft = left
	return b
}

func (b *OfferBuilder) WithExpiresIn(d time.Duration) *OfferBuilder {
	b.ExpiresAt = b.Now.Add(d)
	return b
}

func (b *OfferBuilder) Archived() *OfferBuilder {
	at := b.Now.Add(-time.Minute)
	b.ArchivedAt = &at
	return b
}

func (b *OfferBuilder) RestaurantArchived() *OfferBuilder {
	at := b.Now.Add(-time.Minute)
	b.RestaurantArchivedAt = &at
	return b
}

// Build methods
func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	return offer.NewOffer(b.RestaurantID, b.Title, b.PriceCents, b.OriginalPriceCents, b.QtyTotal, b.ExpiresAt, b.Now)
}

func (b *OfferBuilder) BuildReconstructed() *offer.Offer {
	return offer.ReconstructOffer(
		b.ID, b.RestaurantID, b.Title, b.PriceCents, b.OriginalPriceCents,
		b.QtyTotal, b.QtyLeft, b.ExpiresAt, b.ArchivedAt, b.Now, b.Now,
	)
}

func (b *OfferBuilder) BuildInfra() sqlc.Offers {
	var original pgtype.Int8
	if b.OriginalPriceCents != nil {
		original = pgtype.Int8{Int64: *b.OriginalPriceCents, Valid: true}
	}
	var archived pgtype.Timestamptz
	if b.ArchivedAt != nil {
		archived = pgtype.Timestamptz{Time: *b.ArchivedAt, Valid: true}
	}
	return sqlc.Offers{
		ID:                 b.ID,
		RestaurantID:       b.RestaurantID,
		Title:              b.Title,
		PriceCents:         b.PriceCents,
		OriginalPriceCents: original,
		QtyTotal:           int32(b.QtyTotal), // #nosec G115 -- test data
		QtyLeft:            int32(b.QtyLeft),  // #nosec G115 -- test data
		ExpiresAt:          pgtype.Timestamptz{Time: b.ExpiresAt, Valid: true},
		ArchivedAt:         archived,
		CreatedAt:          pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *OfferBuilder) BuildSnapshot() *shared.OfferSnapshot {
	return &shared.OfferSnapshot{
		ID:                   b.ID,
		RestaurantID:         b.RestaurantID,
		PriceCents:           b.PriceCents,
		QtyTotal:             b.QtyTotal,
		QtyLeft:              b.QtyLeft,
		ExpiresAt:            b.ExpiresAt,
		ArchivedAt:           b.ArchivedAt,
		RestaurantArchivedAt: b.RestaurantArchivedAt,
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:                 b.ID,
		RestaurantID:       b.RestaurantID,
		RestaurantName:     "Corner Bakery",
		Title:              b.Title,
		PriceCents:         b.PriceCents,
		OriginalPriceCents: b.OriginalPriceCents,
		QtyTotal:           b.QtyTotal,
		QtyLeft:            b.QtyLeft,
		ExpiresAt:          b.ExpiresAt,
		ArchivedAt:         b.ArchivedAt,
		CreatedAt:          b.Now,
	}
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	price := b.PriceCents
	return reqdto.CreateOfferRequest{
		Title:              b.Title,
		PriceCents:         &price,
		OriginalPriceCents: b.OriginalPriceCents,
		Quantity:           b.QtyTotal,
		ExpiresAt:          b.ExpiresAt,
	}
}
