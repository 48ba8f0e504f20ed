//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"foody/internal/infra"
	sqlc "foody/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOfferRepository_DecrementRemaining(t *testing.T) {
	offerID := uuid.New()

	tests := []struct {
		name     string
		left     int32
		mockErr  error
		wantLeft int
		wantKind infra.RepositoryErrorKind
	}{
		{name: "unit taken", left: 2, wantLeft: 2},
		{name: "last unit taken", left: 0, wantLeft: 0},
		{name: "nothing left", mockErr: pgx.ErrNoRows, wantKind: infra.KindConflict},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(mockWriteQueries)
			q.On("DecrementOfferQty", mock.Anything, mock.Anything, offerID).Return(tt.left, tt.mockErr)

			repo := NewOfferRepository(q)
			left, err := repo.DecrementRemaining(context.Background(), q, offerID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLeft, left)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestOfferRepository_SetRemaining(t *testing.T) {
	restaurantID := uuid.New()
	offerID := uuid.New()
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	t.Run("updated", func(t *testing.T) {
		q := new(mockWriteQueries)
		q.On("SetOfferQtyLeft", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.SetOfferQtyLeftParams) bool {
			return p.ID == offerID && p.RestaurantID == restaurantID && p.QtyLeft == 3
		})).Return(sqlc.Offers{ID: offerID, RestaurantID: restaurantID, QtyTotal: 5, QtyLeft: 3}, nil)

		o, err := NewOfferRepository(q).SetRemaining(context.Background(), q, restaurantID, offerID, 3, now)
		require.NoError(t, err)
		assert.Equal(t, 3, o.QtyLeft())
		assert.Equal(t, 5, o.QtyTotal())
	})

	t.Run("no row matched", func(t *testing.T) {
		q := new(mockWriteQueries)
		q.On("SetOfferQtyLeft", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Offers{}, pgx.ErrNoRows)

		_, err := NewOfferRepository(q).SetRemaining(context.Background(), q, restaurantID, offerID, 9, now)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestOfferRepository_Create_CheckViolation(t *testing.T) {
	q := new(mockWriteQueries)
	q.On("CreateOffer", mock.Anything, mock.Anything, mock.Anything).
		Return(sqlc.Offers{}, &pgconn.PgError{Code: "23514"})

	o := newTestOffer(t)
	err := NewOfferRepository(q).Create(context.Background(), q, o)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
}

func TestOfferRepository_Archive_NotFound(t *testing.T) {
	q := new(mockWriteQueries)
	q.On("ArchiveOffer", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Offers{}, pgx.ErrNoRows)

	_, err := NewOfferRepository(q).Archive(context.Background(), q, uuid.New(), uuid.New(), time.Now())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
