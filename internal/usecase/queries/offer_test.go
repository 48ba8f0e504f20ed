//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"foody/internal/domain/pricing"
	"foody/internal/infra"
	"foody/internal/pkg/clock"
	"foody/internal/usecase/queries"
	"foody/tests/common/builder"
	queriesmock "foody/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOfferQueries(t *testing.T) (*queriesmock.MockOfferReadStore, queries.OfferQueries) {
	t.Helper()
	store := queriesmock.NewMockOfferReadStore(gomock.NewController(t))
	return store, queries.NewOfferQueries(store, pricing.NewDefaultCalculator(), clock.NewMockClock(builder.BaseTime))
}

func TestOfferQueries_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("fills the live price at read time", func(t *testing.T) {
		store, q := newOfferQueries(t)
		far := builder.NewOfferBuilder().WithExpiresIn(5 * time.Hour).BuildView()
		half := builder.NewOfferBuilder().WithExpiresIn(45 * time.Minute).BuildView()
		store.EXPECT().ListActive(gomock.Any(), builder.BaseTime, nil, int32(100)).
			Return([]*queries.OfferView{half, far}, nil)

		offers, err := q.ListActive(ctx, nil, 0)
		require.NoError(t, err)

		got := map[uuid.UUID]int64{}
		for _, o := range offers {
			got[o.ID] = o.PriceNowCents
		}
		want := map[uuid.UUID]int64{half.ID: 500, far.ID: 800}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("live prices mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("limit is capped and restaurant filter passed through", func(t *testing.T) {
		store, q := newOfferQueries(t)
		restaurantID := uuid.New()
		store.EXPECT().ListActive(gomock.Any(), gomock.Any(), &restaurantID, int32(queries.MaxListLimit)).Return(nil, nil)

		offers, err := q.ListActive(ctx, &restaurantID, 5000)
		require.NoError(t, err)
		assert.Empty(t, offers)
	})
}

func TestOfferQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store, q := newOfferQueries(t)
		view := builder.NewOfferBuilder().WithExpiresIn(0).BuildView()
		store.EXPECT().FindActiveByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(200), got.PriceNowCents)
	})

	t.Run("not found", func(t *testing.T) {
		store, q := newOfferQueries(t)
		id := uuid.New()
		store.EXPECT().FindActiveByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrOfferNotFound)
	})
}

func TestOfferQueries_ListByRestaurant(t *testing.T) {
	store, q := newOfferQueries(t)
	restaurantID := uuid.New()
	soldOut := builder.NewOfferBuilder().WithQuantity(2, 0).BuildView()
	store.EXPECT().ListByRestaurant(gomock.Any(), restaurantID).Return([]*queries.OfferView{soldOut}, nil)

	offers, err := q.ListByRestaurant(context.Background(), restaurantID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, 0, offers[0].QtyLeft)
	assert.Equal(t, int64(800), offers[0].PriceNowCents)
}
