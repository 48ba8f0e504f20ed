package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foody/internal/domain/pricing"
	"foody/internal/domain/reservation"
	"foody/internal/infra"
	"foody/internal/pkg/clock"
	"foody/internal/pkg/config"
	"foody/internal/pkg/errs"
	"foody/internal/pkg/metrics"
	"foody/internal/pkg/ticket"
	"foody/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveInput struct {
	OfferID        uuid.UUID
	BuyerID        *string
	IdempotencyKey *uuid.UUID
}

type ReserveResult struct {
	Reservation   *reservation.Reservation
	PriceNowCents int64
	// Ticket is the signed QR payload the buyer shows at pickup.
	Ticket   string
	Replayed bool
}

// RedeemInput identifies a reservation either by ID plus code, by code alone,
// or by a signed ticket carrying both.
type RedeemInput struct {
	ReservationID *uuid.UUID
	Code          string
	Ticket        string
}

type RedeemResult struct {
	Reservation     *reservation.Reservation
	AlreadyRedeemed bool
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
	Redeem(ctx context.Context, restaurantID uuid.UUID, in RedeemInput) (*RedeemResult, error)
}

type TicketService interface {
	Issue(reservationID uuid.UUID, code string, issuedAt, expiresAt time.Time) (string, error)
	Parse(raw string) (*ticket.Claims, error)
}

type reservationCommandsImpl struct {
	uow          shared.UnitOfWork
	calc         pricing.Calculator
	codes        reservation.CodeGenerator
	tickets      TicketService
	clock        clock.Clock
	ttl          time.Duration
	codeAttempts int
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	calc pricing.Calculator,
	codes reservation.CodeGenerator,
	tickets TicketService,
	clk clock.Clock,
	cfg config.Config,
) ReservationCommands {
	attempts := cfg.Reservation.CodeMaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &reservationCommandsImpl{
		uow:          uow,
		calc:         calc,
		codes:        codes,
		tickets:      tickets,
		clock:        clk,
		ttl:          cfg.Reservation.TTL,
		codeAttempts: attempts,
	}
}

// Reserve takes one unit of an offer. The availability checks, the
// conditional decrement and the reservation insert share one transaction
// that is never retried: a sold out offer is reported as such.
func (uc *reservationCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	if in.BuyerID != nil && len(*in.BuyerID) > reservation.MaxBuyerIDLength {
		return nil, errs.Mark(reservation.ErrBuyerIDTooLong, ErrDomainValidation)
	}

	var result *ReserveResult
	err := uc.uow.WithinOnce(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		if in.IdempotencyKey != nil {
			owned, err := tx.ReservationRequests().Claim(ctx, tx.DB(), *in.IdempotencyKey, in.OfferID, in.BuyerID, now)
			if err != nil {
				return err
			}
			if !owned {
				replayed, err := uc.replay(ctx, tx, *in.IdempotencyKey, in.OfferID, now)
				if err != nil {
					return err
				}
				result = replayed
				return nil
			}
		}

		snap, err := tx.Reads().OfferByID(ctx, in.OfferID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return err
		}
		if !snap.ReservableAt(now) {
			return ErrOfferUnavailable
		}

		if _, err := tx.Offers().DecrementRemaining(ctx, tx.DB(), in.OfferID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSoldOut
			}
			return err
		}

		res, err := uc.insertWithUniqueCode(ctx, tx, snap, in.BuyerID, now)
		if err != nil {
			return err
		}

		if in.IdempotencyKey != nil {
			if err := tx.ReservationRequests().Complete(ctx, tx.DB(), *in.IdempotencyKey, res.ID()); err != nil {
				return err
			}
		}

		result = &ReserveResult{
			Reservation:   res,
			PriceNowCents: uc.calc.PriceNowCents(now, snap.ExpiresAt, snap.PriceCents),
		}
		return nil
	})
	if err != nil {
		metrics.ObserveReservation(reserveOutcome(err))
		return nil, markStorage(err)
	}

	res := result.Reservation
	result.Ticket, err = uc.tickets.Issue(res.ID(), res.Code().String(), res.CreatedAt(), res.ExpiresAt())
	if err != nil {
		// The reservation is committed; the code alone still redeems it.
		slog.Error("failed to issue reservation ticket", "reservation_id", res.ID(), "error", err)
		result.Ticket = ""
	}

	if result.Replayed {
		metrics.ObserveReservation(metrics.OutcomeReplayed)
	} else {
		metrics.ObserveReservation(metrics.OutcomeCreated)
	}
	return result, nil
}

func (uc *reservationCommandsImpl) insertWithUniqueCode(
	ctx context.Context,
	tx shared.Tx,
	snap *shared.OfferSnapshot,
	buyerID *string,
	now time.Time,
) (*reservation.Reservation, error) {
	snapshot := reservation.OfferSpec{
		ID:           snap.ID,
		RestaurantID: snap.RestaurantID,
		ExpiresAt:    snap.ExpiresAt,
	}

	var res *reservation.Reservation
	for attempt := 1; attempt <= uc.codeAttempts; attempt++ {
		code, err := uc.codes.Generate()
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate redemption code")
		}

		if res == nil {
			res, err = reservation.NewReservation(snapshot, buyerID, code, now, uc.ttl)
			if err != nil {
				return nil, errs.Mark(err, ErrDomainValidation)
			}
		} else {
			res.WithCode(code)
		}

		err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err == nil {
			return res, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}

		metrics.CodeCollisionsTotal.Inc()
		slog.Warn("redemption code collision, regenerating", "offer_id", snap.ID, "attempt", attempt)
	}

	slog.Error("redemption code generation exhausted", "offer_id", snap.ID, "attempts", uc.codeAttempts)
	return nil, ErrCodeGenerationExhausted
}

// replay answers a repeated Idempotency-Key with the reservation it produced.
func (uc *reservationCommandsImpl) replay(ctx context.Context, tx shared.Tx, key, offerID uuid.UUID, now time.Time) (*ReserveResult, error) {
	record, err := tx.ReservationRequests().Get(ctx, tx.DB(), key)
	if err != nil {
		return nil, err
	}
	if record.OfferID != offerID {
		return nil, ErrIdempotencyKeyReused
	}
	if record.ReservationID == nil {
		return nil, ErrIdempotencyInProgress
	}

	snap, err := tx.Reads().ReservationByID(ctx, *record.ReservationID)
	if err != nil {
		return nil, err
	}
	offerSnap, err := tx.Reads().OfferByID(ctx, snap.OfferID)
	if err != nil {
		return nil, err
	}

	res := reservation.ReconstructReservation(
		snap.ID,
		snap.OfferID,
		snap.RestaurantID,
		snap.BuyerID,
		reservation.Code(snap.Code),
		reservation.Status(snap.Status),
		snap.ExpiresAt,
		snap.RedeemedAt,
		snap.CreatedAt,
		snap.CreatedAt,
	)
	return &ReserveResult{
		Reservation:   res,
		PriceNowCents: uc.calc.PriceNowCents(now, offerSnap.ExpiresAt, offerSnap.PriceCents),
		Replayed:      true,
	}, nil
}

// Redeem applies a pickup at the counter of restaurantID. Lookups are scoped
// to that restaurant, so another restaurant's reservation reads as not found.
// A hold found past its expiry is written back as expired before the
// ErrReservationExpired result is returned.
func (uc *reservationCommandsImpl) Redeem(ctx context.Context, restaurantID uuid.UUID, in RedeemInput) (*RedeemResult, error) {
	reservationID, code, err := uc.resolveRedemptionRef(in)
	if err != nil {
		return nil, err
	}

	var (
		result    *RedeemResult
		redeemErr error
	)
	err = uc.uow.WithinOnce(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		var res *reservation.Reservation
		var err error
		if reservationID != nil {
			res, err = tx.Reservations().FindForUpdate(ctx, tx.DB(), restaurantID, *reservationID)
		} else {
			res, err = tx.Reservations().FindByCodeForUpdate(ctx, tx.DB(), restaurantID, code)
		}
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		outcome, derr := res.Redeem(code, now)
		switch outcome {
		case reservation.OutcomeRedeemed, reservation.OutcomeExpired:
			if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
				return err
			}
		}

		redeemErr = derr
		result = &RedeemResult{
			Reservation:     res,
			AlreadyRedeemed: outcome == reservation.OutcomeAlreadyRedeemed,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			metrics.ObserveRedemption(metrics.OutcomeNotFound)
		} else {
			metrics.ObserveRedemption(metrics.OutcomeError)
		}
		return nil, markStorage(err)
	}

	switch {
	case errors.Is(redeemErr, reservation.ErrExpired):
		metrics.ObserveRedemption(metrics.OutcomeExpired)
		return nil, errs.Mark(redeemErr, ErrReservationExpired)
	case errors.Is(redeemErr, reservation.ErrCodeMismatch):
		metrics.ObserveRedemption(metrics.OutcomeCodeMismatch)
		return nil, errs.Mark(redeemErr, ErrCodeMismatch)
	case redeemErr != nil:
		return nil, redeemErr
	}

	if result.AlreadyRedeemed {
		metrics.ObserveRedemption(metrics.OutcomeAlreadyRedeemed)
	} else {
		metrics.ObserveRedemption(metrics.OutcomeRedeemed)
	}
	return result, nil
}

func (uc *reservationCommandsImpl) resolveRedemptionRef(in RedeemInput) (*uuid.UUID, reservation.Code, error) {
	if in.Ticket != "" {
		claims, err := uc.tickets.Parse(in.Ticket)
		// An expired ticket still names its reservation; the state machine reports the expiry.
		if err != nil && !errors.Is(err, ticket.ErrExpiredTicket) {
			return nil, "", errs.Mark(err, ErrInvalidTicket)
		}
		code, cerr := reservation.NewCode(claims.Code)
		if cerr != nil {
			return nil, "", errs.Mark(cerr, ErrInvalidTicket)
		}
		id := claims.ReservationID
		return &id, code, nil
	}

	if in.Code == "" {
		return nil, "", ErrMissingRedemptionRef
	}
	code, err := reservation.NewCode(in.Code)
	if err != nil {
		if in.ReservationID != nil {
			return nil, "", errs.Mark(err, ErrCodeMismatch)
		}
		// A malformed code cannot name any reservation.
		return nil, "", errs.Mark(err, ErrReservationNotFound)
	}
	return in.ReservationID, code, nil
}

func reserveOutcome(err error) string {
	switch {
	case errors.Is(err, ErrOfferNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrOfferUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, ErrSoldOut):
		return metrics.OutcomeSoldOut
	default:
		return metrics.OutcomeError
	}
}
