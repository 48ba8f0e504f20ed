//go:build unit

package commands_test

import (
	"context"
	"errors"

	"foody/internal/domain/reservation"
	"foody/internal/infra"
	"foody/internal/usecase/shared"
	sharedmock "foody/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txMocks wires a mocked unit of work whose transactions run fn against mocked repositories.
type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	offers       *sharedmock.MockOfferRepository
	reservations *sharedmock.MockReservationRepository
	restaurants  *sharedmock.MockRestaurantRepository
	requests     *sharedmock.MockReservationRequestRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		offers:       sharedmock.NewMockOfferRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		restaurants:  sharedmock.NewMockRestaurantRepository(ctrl),
		requests:     sharedmock.NewMockReservationRequestRepository(ctrl),
	}
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Offers().Return(m.offers).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Restaurants().Return(m.restaurants).AnyTimes()
	m.tx.EXPECT().ReservationRequests().Return(m.requests).AnyTimes()
	return m
}

func (m *txMocks) runWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(1)
}

func (m *txMocks) runWithinOnce() {
	m.uow.EXPECT().WithinOnce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(1)
}

// fixedCodes hands out codes in order and repeats the last one.
type fixedCodes struct {
	codes []reservation.Code
	next  int
}

func newFixedCodes(codes ...reservation.Code) *fixedCodes {
	return &fixedCodes{codes: codes}
}

func (g *fixedCodes) Generate() (reservation.Code, error) {
	c := g.codes[min(g.next, len(g.codes)-1)]
	g.next++
	return c, nil
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func conflictErr() error {
	return infra.WrapRepoErr("conflict", nil, infra.KindConflict)
}

func duplicateErr() error {
	return infra.WrapRepoErr("duplicate code", nil, infra.KindDuplicateKey)
}

func dbFailureErr() error {
	return infra.WrapRepoErr("query failed", errors.New("connection reset"))
}
