//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"foody/internal/domain/pricing"
	"foody/internal/domain/reservation"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/clock"
	"foody/internal/pkg/config"
	"foody/internal/pkg/errs"
	"foody/internal/pkg/ticket"
	"foody/internal/usecase/commands"
	"foody/internal/usecase/shared"
	"foody/tests/common/builder"
	commandsmock "foody/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationSetup struct {
	m       *txMocks
	tickets *commandsmock.MockTicketService
	codes   *fixedCodes
	clock   *clock.MockClock
	uc      commands.ReservationCommands
}

func newReservationSetup(t *testing.T, codes ...reservation.Code) *reservationSetup {
	t.Helper()
	ctrl := gomock.NewController(t)
	if len(codes) == 0 {
		codes = []reservation.Code{"AB12CD34"}
	}
	s := &reservationSetup{
		m:       newTxMocks(ctrl),
		tickets: commandsmock.NewMockTicketService(ctrl),
		codes:   newFixedCodes(codes...),
		clock:   clock.NewMockClock(builder.BaseTime),
	}
	s.uc = commands.NewReservationCommands(
		s.m.uow,
		pricing.NewDefaultCalculator(),
		s.codes,
		s.tickets,
		s.clock,
		config.NewTestConfig(),
	)
	return s
}

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("success: takes one unit and returns code, live price and ticket", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder()
		buyer := "tg:42"

		s.m.runWithinOnce()
		s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)
		s.m.offers.EXPECT().DecrementRemaining(gomock.Any(), gomock.Any(), o.ID).Return(4, nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.tickets.EXPECT().Issue(gomock.Any(), "AB12CD34", builder.BaseTime, o.ExpiresAt).Return("signed-ticket", nil)

		result, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID, BuyerID: &buyer})
		require.NoError(t, err)

		res := result.Reservation
		assert.Equal(t, reservation.Code("AB12CD34"), res.Code())
		assert.Equal(t, reservation.StatusReserved, res.Status())
		assert.Equal(t, o.ID, res.OfferID())
		assert.Equal(t, o.RestaurantID, res.RestaurantID())
		assert.Equal(t, o.ExpiresAt, res.ExpiresAt())
		assert.Equal(t, &buyer, res.BuyerID())
		// three hours out the floor discount applies
		assert.Equal(t, int64(800), result.PriceNowCents)
		assert.Equal(t, "signed-ticket", result.Ticket)
		assert.False(t, result.Replayed)
	})

	t.Run("error: unknown offer", func(t *testing.T) {
		s := newReservationSetup(t)
		id := uuid.New()

		s.m.runWithinOnce()
		s.m.reads.EXPECT().OfferByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: id})
		assert.True(t, errs.Is(err, commands.ErrOfferNotFound))
	})

	t.Run("error: archived or expired offer is unavailable", func(t *testing.T) {
		cases := map[string]*builder.OfferBuilder{
			"archived":            builder.NewOfferBuilder().Archived(),
			"restaurant archived": builder.NewOfferBuilder().RestaurantArchived(),
			"expires now":         builder.NewOfferBuilder().WithExpiresIn(0),
			"already expired":     builder.NewOfferBuilder().WithExpiresIn(-time.Minute),
		}
		for name, o := range cases {
			t.Run(name, func(t *testing.T) {
				s := newReservationSetup(t)
				s.m.runWithinOnce()
				s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)

				_, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID})
				assert.True(t, errs.Is(err, commands.ErrOfferUnavailable))
			})
		}
	})

	t.Run("error: sold out when the conditional decrement matches nothing", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder().WithQuantity(1, 0)

		s.m.runWithinOnce()
		s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)
		s.m.offers.EXPECT().DecrementRemaining(gomock.Any(), gomock.Any(), o.ID).Return(0, conflictErr())

		_, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID})
		assert.True(t, errs.Is(err, commands.ErrSoldOut))
	})

	t.Run("success: code collision is retried with a fresh code", func(t *testing.T) {
		s := newReservationSetup(t, "AAAAAAAA", "BBBBBBBB")
		o := builder.NewOfferBuilder()

		s.m.runWithinOnce()
		s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)
		s.m.offers.EXPECT().DecrementRemaining(gomock.Any(), gomock.Any(), o.ID).Return(4, nil)
		gomock.InOrder(
			s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(duplicateErr()),
			s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)
		s.tickets.EXPECT().Issue(gomock.Any(), "BBBBBBBB", gomock.Any(), gomock.Any()).Return("t", nil)

		result, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID})
		require.NoError(t, err)
		assert.Equal(t, reservation.Code("BBBBBBBB"), result.Reservation.Code())
	})

	t.Run("error: code generation gives up after the configured attempts", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder()

		s.m.runWithinOnce()
		s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)
		s.m.offers.EXPECT().DecrementRemaining(gomock.Any(), gomock.Any(), o.ID).Return(4, nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(duplicateErr()).Times(5)

		_, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID})
		assert.True(t, errs.Is(err, commands.ErrCodeGenerationExhausted))
	})

	t.Run("error: storage failure is marked as database failure", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder()

		s.m.runWithinOnce()
		s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)
		s.m.offers.EXPECT().DecrementRemaining(gomock.Any(), gomock.Any(), o.ID).Return(0, dbFailureErr())

		_, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID})
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})

	t.Run("error: buyer id too long never opens a transaction", func(t *testing.T) {
		s := newReservationSetup(t)
		long := strings.Repeat("x", reservation.MaxBuyerIDLength+1)

		_, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: uuid.New(), BuyerID: &long})
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})

	t.Run("success: ticket failure keeps the reservation", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder()

		s.m.runWithinOnce()
		s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)
		s.m.offers.EXPECT().DecrementRemaining(gomock.Any(), gomock.Any(), o.ID).Return(4, nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.tickets.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("signing failed"))

		result, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID})
		require.NoError(t, err)
		assert.Empty(t, result.Ticket)
		assert.Equal(t, reservation.Code("AB12CD34"), result.Reservation.Code())
	})
}

func TestReserveIdempotency(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	t.Run("first call claims the key and records the reservation", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder()

		var created uuid.UUID
		s.m.runWithinOnce()
		s.m.requests.EXPECT().Claim(gomock.Any(), gomock.Any(), key, o.ID, nil, builder.BaseTime).Return(true, nil)
		s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)
		s.m.offers.EXPECT().DecrementRemaining(gomock.Any(), gomock.Any(), o.ID).Return(4, nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
				created = res.ID()
				return nil
			})
		s.m.requests.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, reservationID uuid.UUID) error {
				assert.Equal(t, created, reservationID)
				return nil
			})
		s.tickets.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("t", nil)

		result, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID, IdempotencyKey: &key})
		require.NoError(t, err)
		assert.False(t, result.Replayed)
	})

	t.Run("repeat call replays the stored reservation without touching stock", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder()
		r := builder.NewReservationBuilder().ForOffer(o)

		s.m.runWithinOnce()
		s.m.requests.EXPECT().Claim(gomock.Any(), gomock.Any(), key, o.ID, nil, gomock.Any()).Return(false, nil)
		s.m.requests.EXPECT().Get(gomock.Any(), gomock.Any(), key).Return(&shared.ReservationRequestRecord{
			Key: key, OfferID: o.ID, ReservationID: &r.ID,
		}, nil)
		s.m.reads.EXPECT().ReservationByID(gomock.Any(), r.ID).Return(r.BuildSnapshot(), nil)
		s.m.reads.EXPECT().OfferByID(gomock.Any(), o.ID).Return(o.BuildSnapshot(), nil)
		s.tickets.EXPECT().Issue(r.ID, r.Code, gomock.Any(), gomock.Any()).Return("t", nil)

		result, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID, IdempotencyKey: &key})
		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, r.ID, result.Reservation.ID())
		assert.Equal(t, int64(800), result.PriceNowCents)
	})

	t.Run("error: key reused for another offer", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder()
		reservationID := uuid.New()

		s.m.runWithinOnce()
		s.m.requests.EXPECT().Claim(gomock.Any(), gomock.Any(), key, o.ID, nil, gomock.Any()).Return(false, nil)
		s.m.requests.EXPECT().Get(gomock.Any(), gomock.Any(), key).Return(&shared.ReservationRequestRecord{
			Key: key, OfferID: uuid.New(), ReservationID: &reservationID,
		}, nil)

		_, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID, IdempotencyKey: &key})
		assert.True(t, errs.Is(err, commands.ErrIdempotencyKeyReused))
	})

	t.Run("error: claimed key without a reservation is still in progress", func(t *testing.T) {
		s := newReservationSetup(t)
		o := builder.NewOfferBuilder()

		s.m.runWithinOnce()
		s.m.requests.EXPECT().Claim(gomock.Any(), gomock.Any(), key, o.ID, nil, gomock.Any()).Return(false, nil)
		s.m.requests.EXPECT().Get(gomock.Any(), gomock.Any(), key).Return(&shared.ReservationRequestRecord{
			Key: key, OfferID: o.ID,
		}, nil)

		_, err := s.uc.Reserve(ctx, commands.ReserveInput{OfferID: o.ID, IdempotencyKey: &key})
		assert.True(t, errs.Is(err, commands.ErrIdempotencyInProgress))
	})
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()

	t.Run("success: by id and code", func(t *testing.T) {
		s := newReservationSetup(t)
		r := builder.NewReservationBuilder()

		s.m.runWithinOnce()
		s.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.RestaurantID, r.ID).Return(r.BuildReconstructed(), nil)
		s.m.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
				assert.Equal(t, reservation.StatusRedeemed, res.Status())
				return nil
			})

		result, err := s.uc.Redeem(ctx, r.RestaurantID, commands.RedeemInput{ReservationID: &r.ID, Code: "ab12cd34"})
		require.NoError(t, err)
		assert.False(t, result.AlreadyRedeemed)
		assert.Equal(t, reservation.StatusRedeemed, result.Reservation.Status())
		require.NotNil(t, result.Reservation.RedeemedAt())
		assert.Equal(t, builder.BaseTime, *result.Reservation.RedeemedAt())
	})

	t.Run("success: by code alone", func(t *testing.T) {
		s := newReservationSetup(t)
		r := builder.NewReservationBuilder()

		s.m.runWithinOnce()
		s.m.reservations.EXPECT().FindByCodeForUpdate(gomock.Any(), gomock.Any(), r.RestaurantID, reservation.Code("AB12CD34")).
			Return(r.BuildReconstructed(), nil)
		s.m.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.Redeem(ctx, r.RestaurantID, commands.RedeemInput{Code: "AB12CD34"})
		require.NoError(t, err)
		assert.Equal(t, r.ID, result.Reservation.ID())
	})

	t.Run("success: second redemption reports already redeemed without writing", func(t *testing.T) {
		s := newReservationSetup(t)
		r := builder.NewReservationBuilder().Redeemed()

		s.m.runWithinOnce()
		s.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.RestaurantID, r.ID).Return(r.BuildReconstructed(), nil)

		result, err := s.uc.Redeem(ctx, r.RestaurantID, commands.RedeemInput{ReservationID: &r.ID, Code: r.Code})
		require.NoError(t, err)
		assert.True(t, result.AlreadyRedeemed)
		assert.Equal(t, *r.RedeemedAt, *result.Reservation.RedeemedAt())
	})

	t.Run("error: expired hold is written back before reporting expiry", func(t *testing.T) {
		s := newReservationSetup(t)
		r := builder.NewReservationBuilder().ExpiredHold()

		s.m.runWithinOnce()
		s.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.RestaurantID, r.ID).Return(r.BuildReconstructed(), nil)
		s.m.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
				assert.Equal(t, reservation.StatusExpired, res.Status())
				return nil
			})

		_, err := s.uc.Redeem(ctx, r.RestaurantID, commands.RedeemInput{ReservationID: &r.ID, Code: r.Code})
		assert.True(t, errs.Is(err, commands.ErrReservationExpired))
	})

	t.Run("error: wrong code changes nothing", func(t *testing.T) {
		s := newReservationSetup(t)
		r := builder.NewReservationBuilder()

		s.m.runWithinOnce()
		s.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.RestaurantID, r.ID).Return(r.BuildReconstructed(), nil)

		_, err := s.uc.Redeem(ctx, r.RestaurantID, commands.RedeemInput{ReservationID: &r.ID, Code: "ZZZZZZZZ"})
		assert.True(t, errs.Is(err, commands.ErrCodeMismatch))
	})

	t.Run("error: reservation of another restaurant is not found", func(t *testing.T) {
		s := newReservationSetup(t)
		id := uuid.New()
		restaurantID := uuid.New()

		s.m.runWithinOnce()
		s.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), restaurantID, id).Return(nil, notFoundErr())

		_, err := s.uc.Redeem(ctx, restaurantID, commands.RedeemInput{ReservationID: &id, Code: "AB12CD34"})
		assert.True(t, errs.Is(err, commands.ErrReservationNotFound))
	})

	t.Run("error: references are validated before any transaction", func(t *testing.T) {
		id := uuid.New()
		cases := []struct {
			name string
			in   commands.RedeemInput
			want error
		}{
			{name: "nothing given", in: commands.RedeemInput{}, want: commands.ErrMissingRedemptionRef},
			{name: "id without code", in: commands.RedeemInput{ReservationID: &id}, want: commands.ErrMissingRedemptionRef},
			{name: "malformed code alone", in: commands.RedeemInput{Code: "no"}, want: commands.ErrReservationNotFound},
			{name: "malformed code with id", in: commands.RedeemInput{ReservationID: &id, Code: "no"}, want: commands.ErrCodeMismatch},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				s := newReservationSetup(t)
				_, err := s.uc.Redeem(ctx, uuid.New(), tc.in)
				assert.True(t, errs.Is(err, tc.want), "got %v", err)
			})
		}
	})

	t.Run("success: ticket names the reservation and its code", func(t *testing.T) {
		s := newReservationSetup(t)
		r := builder.NewReservationBuilder()

		s.tickets.EXPECT().Parse("qr-payload").Return(&ticket.Claims{ReservationID: r.ID, Code: r.Code}, nil)
		s.m.runWithinOnce()
		s.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.RestaurantID, r.ID).Return(r.BuildReconstructed(), nil)
		s.m.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.Redeem(ctx, r.RestaurantID, commands.RedeemInput{Ticket: "qr-payload"})
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusRedeemed, result.Reservation.Status())
	})

	t.Run("error: expired ticket still resolves and reports reservation expiry", func(t *testing.T) {
		s := newReservationSetup(t)
		r := builder.NewReservationBuilder().ExpiredHold()

		s.tickets.EXPECT().Parse("old-qr").Return(&ticket.Claims{ReservationID: r.ID, Code: r.Code}, ticket.ErrExpiredTicket)
		s.m.runWithinOnce()
		s.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.RestaurantID, r.ID).Return(r.BuildReconstructed(), nil)
		s.m.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.uc.Redeem(ctx, r.RestaurantID, commands.RedeemInput{Ticket: "old-qr"})
		assert.True(t, errs.Is(err, commands.ErrReservationExpired))
	})

	t.Run("error: forged ticket", func(t *testing.T) {
		s := newReservationSetup(t)
		s.tickets.EXPECT().Parse("forged").Return(nil, ticket.ErrInvalidTicket)

		_, err := s.uc.Redeem(ctx, uuid.New(), commands.RedeemInput{Ticket: "forged"})
		assert.True(t, errs.Is(err, commands.ErrInvalidTicket))
	})
}
