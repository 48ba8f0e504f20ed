//go:build e2e

package offer_test

import (
	"net/http"
	"testing"
	"time"

	"foody/internal/handler/dto/response"
	"foody/internal/infra/db"
	"foody/internal/pkg/apikey"
	"foody/tests/common/dbtest"
	"foody/tests/common/httptest"
	"foody/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	offersURL          = "/api/v1/offers"
	merchantOffersURL  = "/api/v1/merchant/offers"
	adminRestaurantURL = "/api/v1/admin/restaurants"
)

type OfferSuite struct {
	e2e.SharedSuite
}

func (s *OfferSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestOfferSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OfferSuite))
}

type listedOffer struct {
	ID            uuid.UUID
	PriceNowCents int64
	QtyLeft       int
}

func (s *OfferSuite) TestListActive() {
	s.Run("lists only reservable offers with live price, soonest expiry first", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", "k")
		now := time.Now()
		soon := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 1000, Quantity: 2, ExpiresAt: now.Add(2 * time.Hour)})
		later := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 2000, Quantity: 1, ExpiresAt: now.Add(6 * time.Hour)})
		dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 1000, ExpiresAt: now.Add(-time.Minute)})
		soldOut := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 1000})
		_, err := s.DB.Exec(t.Context(), "UPDATE offers SET qty_left = 0 WHERE id = $1", soldOut)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL, nil, nil)
		var body response.OfferListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)

		got := make([]listedOffer, len(body.Offers))
		for i, o := range body.Offers {
			got[i] = listedOffer{ID: o.ID, PriceNowCents: o.PriceNowCents, QtyLeft: o.QtyLeft}
		}
		want := []listedOffer{
			{ID: soon, PriceNowCents: 800, QtyLeft: 2},
			{ID: later, PriceNowCents: 1600, QtyLeft: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("active offers mismatch (-want +got):\n%s", diff)
		}
	})
}

func (s *OfferSuite) TestMerchantLifecycle() {
	s.Run("register, publish, correct and archive an offer", func() {
		t := s.T()
		admin := map[string]string{"X-Admin-Key": s.Config.Admin.APIKey}

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRestaurantURL, map[string]any{"name": "Corner Bakery", "lat": 52.52, "lng": 13.405}, admin)
		var registered response.RegisterRestaurantResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &registered)
		require.NotEmpty(t, registered.APIKey)
		merchant := httptest.MerchantHeaders(registered.ID.String(), registered.APIKey)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, merchantOffersURL, map[string]any{
			"title":       "Bread bag",
			"price_cents": 1000,
			"quantity":    3,
			"expires_at":  time.Now().Add(4 * time.Hour).UTC().Format(time.RFC3339),
		}, merchant)
		var created response.OfferResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		require.Equal(t, 3, created.QtyLeft)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, merchantOffersURL+"/"+created.ID.String()+"/quantity", map[string]any{"qty_left": 1}, merchant)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, 1, dbtest.OfferQtyLeft(t, s.DB, created.ID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, merchantOffersURL+"/"+created.ID.String()+"/quantity", map[string]any{"qty_left": 4}, merchant)
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, merchantOffersURL+"/"+created.ID.String()+"/archive", nil, merchant)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL+"/"+created.ID.String(), nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Offer not found")
	})

	s.Run("rotated key replaces the old one", func() {
		t := s.T()
		admin := map[string]string{"X-Admin-Key": s.Config.Admin.APIKey}
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", "old-key")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRestaurantURL+"/"+restaurantID.String()+"/rotate-key", nil, admin)
		var rotated response.APIKeyResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &rotated)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, merchantOffersURL, nil, httptest.MerchantHeaders(restaurantID.String(), "old-key"))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, merchantOffersURL, nil, httptest.MerchantHeaders(restaurantID.String(), rotated.APIKey))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	s.Run("admin routes need the admin key", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminRestaurantURL, map[string]any{"name": "x"}, map[string]string{"X-Admin-Key": "wrong"})
		require.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	})
}

func (s *OfferSuite) TestSeedDemo() {
	s.Run("demo bakery is listed and its merchant key works", func() {
		t := s.T()
		hash, err := apikey.Hash("demo-merchant-key")
		require.NoError(t, err)

		created, err := db.SeedDemo(t.Context(), s.DB, hash, time.Now().UTC())
		require.NoError(t, err)
		require.True(t, created)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL+"?restaurant_id="+db.DemoRestaurantID.String(), nil, nil)
		var body response.OfferListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Len(t, body.Offers, 1)
		require.Equal(t, db.DemoOfferID, body.Offers[0].ID)
		require.Equal(t, 10, body.Offers[0].QtyLeft)

		merchant := map[string]string{"X-Restaurant-ID": db.DemoRestaurantID.String(), "X-API-Key": "demo-merchant-key"}
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, merchantOffersURL, nil, merchant)
		require.Equal(t, http.StatusOK, rec.Code)

		created, err = db.SeedDemo(t.Context(), s.DB, hash, time.Now().UTC())
		require.NoError(t, err)
		require.False(t, created)
	})
}
