//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"foody/internal/domain/offer"
	"foody/internal/pkg/clock"
	"foody/internal/pkg/errs"
	"foody/internal/usecase/commands"
	"foody/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOfferCommands(t *testing.T) (*txMocks, commands.OfferCommands) {
	t.Helper()
	m := newTxMocks(gomock.NewController(t))
	return m, commands.NewOfferCommands(m.uow, clock.NewMockClock(builder.BaseTime))
}

func createInput(b *builder.OfferBuilder) commands.CreateOfferInput {
	return commands.CreateOfferInput{
		Title:              b.Title,
		PriceCents:         b.PriceCents,
		OriginalPriceCents: b.OriginalPriceCents,
		Quantity:           b.QtyTotal,
		ExpiresAt:          b.ExpiresAt,
	}
}

func TestCreateOffer(t *testing.T) {
	ctx := context.Background()
	rest := builder.NewRestaurantBuilder()

	t.Run("success: stores an offer with full remaining quantity", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		b := builder.NewOfferBuilder()

		m.runWithin()
		m.reads.EXPECT().RestaurantByID(gomock.Any(), rest.ID).Return(rest.BuildSnapshot(), nil)
		m.offers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		o, err := uc.Create(ctx, rest.ID, createInput(b))
		require.NoError(t, err)
		assert.Equal(t, rest.ID, o.RestaurantID())
		assert.Equal(t, b.QtyTotal, o.QtyLeft())
		assert.Equal(t, builder.BaseTime, o.CreatedAt())
	})

	t.Run("error: invalid input is rejected before storage", func(t *testing.T) {
		_, uc := newOfferCommands(t)
		b := builder.NewOfferBuilder().WithExpiresIn(-time.Minute)

		_, err := uc.Create(ctx, rest.ID, createInput(b))
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.ErrorIs(t, err, offer.ErrExpiryInPast)
	})

	t.Run("error: unknown restaurant", func(t *testing.T) {
		m, uc := newOfferCommands(t)

		m.runWithin()
		m.reads.EXPECT().RestaurantByID(gomock.Any(), rest.ID).Return(nil, notFoundErr())

		_, err := uc.Create(ctx, rest.ID, createInput(builder.NewOfferBuilder()))
		assert.True(t, errs.Is(err, commands.ErrRestaurantNotFound))
	})

	t.Run("error: archived restaurant cannot publish", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		archived := builder.NewRestaurantBuilder().Archived()

		m.runWithin()
		m.reads.EXPECT().RestaurantByID(gomock.Any(), archived.ID).Return(archived.BuildSnapshot(), nil)

		_, err := uc.Create(ctx, archived.ID, createInput(builder.NewOfferBuilder()))
		assert.True(t, errs.Is(err, commands.ErrUnauthorized))
	})
}

func TestArchiveOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		b := builder.NewOfferBuilder().Archived()

		m.runWithin()
		m.offers.EXPECT().Archive(gomock.Any(), gomock.Any(), b.RestaurantID, b.ID, builder.BaseTime).Return(b.BuildReconstructed(), nil)

		o, err := uc.Archive(ctx, b.RestaurantID, b.ID)
		require.NoError(t, err)
		assert.True(t, o.IsArchived())
	})

	t.Run("error: offer of another restaurant", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		restaurantID, offerID := uuid.New(), uuid.New()

		m.runWithin()
		m.offers.EXPECT().Archive(gomock.Any(), gomock.Any(), restaurantID, offerID, gomock.Any()).Return(nil, notFoundErr())

		_, err := uc.Archive(ctx, restaurantID, offerID)
		assert.True(t, errs.Is(err, commands.ErrOfferNotFound))
	})
}

func TestAdjustQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("success: within bounds", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		b := builder.NewOfferBuilder().WithQuantity(5, 1)
		updated := builder.NewOfferBuilder().With(func(u *builder.OfferBuilder) { *u = *b }).WithQuantity(5, 3)

		m.runWithin()
		m.reads.EXPECT().OfferByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		m.offers.EXPECT().SetRemaining(gomock.Any(), gomock.Any(), b.RestaurantID, b.ID, 3, builder.BaseTime).Return(updated.BuildReconstructed(), nil)

		o, err := uc.AdjustQuantity(ctx, b.RestaurantID, b.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, o.QtyLeft())
	})

	t.Run("error: above total", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		b := builder.NewOfferBuilder().WithQuantity(5, 1)

		m.runWithin()
		m.reads.EXPECT().OfferByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		_, err := uc.AdjustQuantity(ctx, b.RestaurantID, b.ID, 6)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})

	t.Run("error: offer of another restaurant reads as not found", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		b := builder.NewOfferBuilder()

		m.runWithin()
		m.reads.EXPECT().OfferByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		_, err := uc.AdjustQuantity(ctx, uuid.New(), b.ID, 1)
		assert.True(t, errs.Is(err, commands.ErrOfferNotFound))
	})

	t.Run("error: archived offer", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		b := builder.NewOfferBuilder().Archived()

		m.runWithin()
		m.reads.EXPECT().OfferByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		_, err := uc.AdjustQuantity(ctx, b.RestaurantID, b.ID, 1)
		assert.True(t, errs.Is(err, commands.ErrOfferUnavailable))
	})

	t.Run("error: archived between read and update", func(t *testing.T) {
		m, uc := newOfferCommands(t)
		b := builder.NewOfferBuilder()

		m.runWithin()
		m.reads.EXPECT().OfferByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		m.offers.EXPECT().SetRemaining(gomock.Any(), gomock.Any(), b.RestaurantID, b.ID, 1, gomock.Any()).Return(nil, conflictErr())

		_, err := uc.AdjustQuantity(ctx, b.RestaurantID, b.ID, 1)
		assert.True(t, errs.Is(err, commands.ErrOfferUnavailable))
	})
}
