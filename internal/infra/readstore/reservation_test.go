//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"foody/internal/infra"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReservationByIDRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByRestaurantFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByRestaurantFirstPageParams) ([]sqlc.ListReservationsByRestaurantFirstPageRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsByRestaurantFirstPageRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByRestaurantKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByRestaurantKeysetParams) ([]sqlc.ListReservationsByRestaurantKeysetRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsByRestaurantKeysetRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByBuyerFirstPageParams) ([]sqlc.ListReservationsByBuyerFirstPageRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsByBuyerFirstPageRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByBuyerKeysetParams) ([]sqlc.ListReservationsByBuyerKeysetRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsByBuyerKeysetRow), args.Error(1)
}

func TestReservationReadStore_FindByID(t *testing.T) {
	id := uuid.New()
	redeemedAt := time.Date(2025, 6, 1, 20, 15, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		q := new(MockReservationViewQueries)
		q.On("GetReservationByID", mock.Anything, mock.Anything, id).Return(sqlc.GetReservationByIDRow{
			ID:             id,
			OfferID:        uuid.New(),
			RestaurantID:   uuid.New(),
			Code:           "K7P2M9QX",
			Status:         "redeemed",
			RedeemedAt:     pgconv.TimeToPgtype(redeemedAt),
			OfferTitle:     "Soup",
			RestaurantName: "Canteen",
		}, nil)

		view, err := NewReservationReadStore(q, nil).FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "redeemed", view.Status)
		assert.Nil(t, view.BuyerID)
		require.NotNil(t, view.RedeemedAt)
		assert.Equal(t, redeemedAt, *view.RedeemedAt)
		assert.Equal(t, "Canteen", view.RestaurantName)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockReservationViewQueries)
		q.On("GetReservationByID", mock.Anything, mock.Anything, id).Return(sqlc.GetReservationByIDRow{}, pgx.ErrNoRows)

		_, err := NewReservationReadStore(q, nil).FindByID(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationReadStore_FindByRestaurantFirstPage_StatusFilter(t *testing.T) {
	restaurantID := uuid.New()
	status := "reserved"

	q := new(MockReservationViewQueries)
	q.On("ListReservationsByRestaurantFirstPage", mock.Anything, mock.Anything, sqlc.ListReservationsByRestaurantFirstPageParams{
		RestaurantID: restaurantID,
		Status:       pgconv.StringToPgtype(status),
		Limit:        21,
	}).Return([]sqlc.ListReservationsByRestaurantFirstPageRow{
		{ID: uuid.New(), Code: "AAAA1111", Status: status, BuyerID: pgconv.StringToPgtype("buyer-9")},
	}, nil)

	items, err := NewReservationReadStore(q, nil).FindByRestaurantFirstPage(context.Background(), restaurantID, &status, 21)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].BuyerID)
	assert.Equal(t, "buyer-9", *items[0].BuyerID)
	q.AssertExpectations(t)
}
