//go:build unit

package repository

import (
	"context"

	sqlc "foody/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type mockWriteQueries struct {
	mock.Mock
}

func (m *mockWriteQueries) CreateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferParams) (sqlc.Offers, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Offers), args.Error(1)
}

func (m *mockWriteQueries) DecrementOfferQty(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int32, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int32), args.Error(1)
}

func (m *mockWriteQueries) SetOfferQtyLeft(ctx context.Context, db sqlc.DBTX, arg sqlc.SetOfferQtyLeftParams) (sqlc.Offers, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Offers), args.Error(1)
}

func (m *mockWriteQueries) ArchiveOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.ArchiveOfferParams) (sqlc.Offers, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Offers), args.Error(1)
}

func (m *mockWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockWriteQueries) GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationForUpdateParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *mockWriteQueries) GetReservationByCodeForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationByCodeForUpdateParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *mockWriteQueries) UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockWriteQueries) ClaimReservationRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimReservationRequestParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockWriteQueries) GetReservationRequest(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (sqlc.ReservationRequests, error) {
	args := m.Called(ctx, db, key)
	return args.Get(0).(sqlc.ReservationRequests), args.Error(1)
}

func (m *mockWriteQueries) CompleteReservationRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteReservationRequestParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *mockWriteQueries) CreateRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRestaurantParams) (sqlc.Restaurants, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Restaurants), args.Error(1)
}

func (m *mockWriteQueries) UpdateRestaurantAPIKey(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRestaurantAPIKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockWriteQueries) ArchiveRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.ArchiveRestaurantParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation so the mock can stand in for the transaction handle
func (m *mockWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *mockWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *mockWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}
