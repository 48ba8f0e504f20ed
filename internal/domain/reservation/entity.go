package reservation

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCodeMismatch     = errors.New("redemption code mismatch")
	ErrExpired          = errors.New("reservation expired")
	ErrBuyerIDTooLong   = errors.New("buyer id is too long (max 128 characters)")
	ErrOfferAlreadyOver = errors.New("offer already expired")
)

const MaxBuyerIDLength = 128

// OfferSpec is the part of an offer a reservation depends on.
type OfferSpec struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	ExpiresAt    time.Time
}

// RedeemOutcome tells the caller what Redeem changed and therefore what must
// be persisted.
type RedeemOutcome int

const (
	OutcomeUnchanged RedeemOutcome = iota
	OutcomeRedeemed
	OutcomeAlreadyRedeemed
	OutcomeExpired
)

type Reservation struct {
	id           uuid.UUID
	offerID      uuid.UUID
	restaurantID uuid.UUID
	buyerID      *string
	code         Code
	status       Status
	expiresAt    time.Time
	redeemedAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReservation creates a hold on one unit. The hold expires with the offer
// or after ttl, whichever comes first; a zero ttl means offer expiry only.
func NewReservation(offer OfferSpec, buyerID *string, code Code, now time.Time, ttl time.Duration) (*Reservation, error) {
	if buyerID != nil && len(*buyerID) > MaxBuyerIDLength {
		return nil, ErrBuyerIDTooLong
	}
	if !now.Before(offer.ExpiresAt) {
		return nil, ErrOfferAlreadyOver
	}

	expiresAt := offer.ExpiresAt
	if ttl > 0 {
		if capped := now.Add(ttl); capped.Before(expiresAt) {
			expiresAt = capped
		}
	}

	return &Reservation{
		id:           uuid.New(),
		offerID:      offer.ID,
		restaurantID: offer.RestaurantID,
		buyerID:      buyerID,
		code:         code,
		status:       StatusReserved,
		expiresAt:    expiresAt,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReservation(
	id, offerID, restaurantID uuid.UUID,
	buyerID *string,
	code Code,
	status Status,
	expiresAt time.Time,
	redeemedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		offerID:      offerID,
		restaurantID: restaurantID,
		buyerID:      buyerID,
		code:         code,
		status:       status,
		expiresAt:    expiresAt,
		redeemedAt:   redeemedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// WithCode replaces the code of a reservation that has not been stored yet.
func (r *Reservation) WithCode(code Code) {
	r.code = code
}

// Redeem applies a redemption attempt at now.
//
// An expired reservation reports ErrExpired without looking at the code. A
// reserved one past its expiry transitions to expired and reports ErrExpired,
// so expiry wins over a correct code. A redeemed one with the right code is
// returned unchanged.
func (r *Reservation) Redeem(code Code, now time.Time) (RedeemOutcome, error) {
	switch r.status {
	case StatusExpired:
		return OutcomeUnchanged, ErrExpired
	case StatusReserved:
		if !now.Before(r.expiresAt) {
			r.status = StatusExpired
			r.updatedAt = now
			return OutcomeExpired, ErrExpired
		}
	}

	if !r.MatchesCode(code) {
		return OutcomeUnchanged, ErrCodeMismatch
	}

	if r.status == StatusRedeemed {
		return OutcomeAlreadyRedeemed, nil
	}

	redeemedAt := now
	r.status = StatusRedeemed
	r.redeemedAt = &redeemedAt
	r.updatedAt = now
	return OutcomeRedeemed, nil
}

func (r *Reservation) MatchesCode(code Code) bool {
	return subtle.ConstantTimeCompare([]byte(r.code), []byte(code)) == 1
}

// EffectiveStatus reports the status a reader should see at now: a reserved
// hold past its expiry reads as expired even before it is written back.
func (r *Reservation) EffectiveStatus(now time.Time) Status {
	if r.status == StatusReserved && !now.Before(r.expiresAt) {
		return StatusExpired
	}
	return r.status
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) OfferID() uuid.UUID      { return r.offerID }
func (r *Reservation) RestaurantID() uuid.UUID { return r.restaurantID }
func (r *Reservation) BuyerID() *string        { return r.buyerID }
func (r *Reservation) Code() Code              { return r.code }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) ExpiresAt() time.Time    { return r.expiresAt }
func (r *Reservation) RedeemedAt() *time.Time  { return r.redeemedAt }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
