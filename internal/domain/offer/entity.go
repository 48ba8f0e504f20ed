package offer

import (
	"errors"
	"strings"
	"time"

	"foody/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle             = errors.New("offer title cannot be empty")
	ErrTitleTooLong           = errors.New("offer title is too long (max 255 characters)")
	ErrNegativePrice          = errors.New("price cannot be negative")
	ErrInvalidQuantity        = errors.New("quantity must be between 1 and 10000")
	ErrRemainingOutOfRange    = errors.New("remaining quantity must be between 0 and total quantity")
	ErrExpiryInPast           = errors.New("expiry must be in the future")
	ErrMissingRestaurant      = errors.New("restaurant is required")
	ErrOriginalBelowListPrice = errors.New("original price cannot be below the list price")
)

const (
	MaxTitleLength = 255
	MaxQuantity    = 10000
)

// Offer is a perishable, quantity-limited listing. qtyLeft is only ever
// changed in storage through a conditional update; the entity carries the
// value it was loaded with.
type Offer struct {
	id                 uuid.UUID
	restaurantID       uuid.UUID
	title              string
	priceCents         int64
	originalPriceCents *int64
	qtyTotal           int
	qtyLeft            int
	expiresAt          time.Time
	archivedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewOffer(
	restaurantID uuid.UUID,
	title string,
	priceCents int64,
	originalPriceCents *int64,
	qtyTotal int,
	expiresAt time.Time,
	now time.Time,
) (*Offer, error) {
	if restaurantID == uuid.Nil {
		return nil, ErrMissingRestaurant
	}
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if originalPriceCents != nil {
		if *originalPriceCents < 0 {
			return nil, ErrNegativePrice
		}
		if *originalPriceCents < priceCents {
			return nil, ErrOriginalBelowListPrice
		}
	}
	if qtyTotal < 1 || qtyTotal > MaxQuantity {
		return nil, ErrInvalidQuantity
	}
	if !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}

	return &Offer{
		id:                 uuid.New(),
		restaurantID:       restaurantID,
		title:              title,
		priceCents:         priceCents,
		originalPriceCents: originalPriceCents,
		qtyTotal:           qtyTotal,
		qtyLeft:            qtyTotal,
		expiresAt:          expiresAt,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructOffer(
	id, restaurantID uuid.UUID,
	title string,
	priceCents int64,
	originalPriceCents *int64,
	qtyTotal, qtyLeft int,
	expiresAt time.Time,
	archivedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:                 id,
		restaurantID:       restaurantID,
		title:              title,
		priceCents:         priceCents,
		originalPriceCents: originalPriceCents,
		qtyTotal:           qtyTotal,
		qtyLeft:            qtyLeft,
		expiresAt:          expiresAt,
		archivedAt:         archivedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (o *Offer) IsArchived() bool { return o.archivedAt != nil }

func (o *Offer) IsExpiredAt(now time.Time) bool {
	return !now.Before(o.expiresAt)
}

// IsAvailableAt reports whether the offer can accept reservations at now,
// ignoring remaining quantity.
func (o *Offer) IsAvailableAt(now time.Time) bool {
	return !o.IsArchived() && !o.IsExpiredAt(now)
}

func (o *Offer) IsSoldOut() bool { return o.qtyLeft <= 0 }

func (o *Offer) LivePriceCents(calc pricing.Calculator, now time.Time) int64 {
	return calc.PriceNowCents(now, o.expiresAt, o.priceCents)
}

// ValidateRemaining checks a merchant correction of the remaining quantity.
func (o *Offer) ValidateRemaining(qtyLeft int) error {
	return ValidateRemaining(qtyLeft, o.qtyTotal)
}

func ValidateRemaining(qtyLeft, qtyTotal int) error {
	if qtyLeft < 0 || qtyLeft > qtyTotal {
		return ErrRemainingOutOfRange
	}
	return nil
}

func (o *Offer) ID() uuid.UUID              { return o.id }
func (o *Offer) RestaurantID() uuid.UUID    { return o.restaurantID }
func (o *Offer) Title() string              { return o.title }
func (o *Offer) PriceCents() int64          { return o.priceCents }
func (o *Offer) OriginalPriceCents() *int64 { return o.originalPriceCents }
func (o *Offer) QtyTotal() int              { return o.qtyTotal }
func (o *Offer) QtyLeft() int               { return o.qtyLeft }
func (o *Offer) ExpiresAt() time.Time       { return o.expiresAt }
func (o *Offer) ArchivedAt() *time.Time     { return o.archivedAt }
func (o *Offer) CreatedAt() time.Time       { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time       { return o.updatedAt }
