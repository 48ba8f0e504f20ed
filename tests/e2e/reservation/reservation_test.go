//go:build e2e

package reservation_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"foody/internal/handler/api"
	"foody/internal/handler/dto/response"
	"foody/tests/common/dbtest"
	"foody/tests/common/httptest"
	"foody/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/v1/reservations"
	redeemURL       = "/api/v1/merchant/reservations/redeem"
	merchantResURL  = "/api/v1/merchant/reservations/%s"
	merchantKey     = "merchant-secret-key"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) reserve(offerID uuid.UUID, headers map[string]string) (int, response.ReserveResponse) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, map[string]any{"offer_id": offerID, "buyer_id": "tg:42"}, headers)
	var body response.ReserveResponse
	if rec.Code < 300 {
		require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body
}

// =============================================================================
// Reserve
// =============================================================================

func (s *ReservationSuite) TestReserve() {
	s.Run("success: decrements quantity and returns code, live price and ticket", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 1000, Quantity: 2, ExpiresAt: time.Now().Add(5 * time.Hour)})

		code, body := s.reserve(offerID, nil)

		require.Equal(t, http.StatusCreated, code)
		require.Len(t, body.Code, s.Config.Reservation.CodeLength)
		require.Equal(t, "reserved", body.Status)
		require.Equal(t, int64(800), body.PriceNowCents)
		require.NotEmpty(t, body.Ticket)
		require.Equal(t, 1, dbtest.OfferQtyLeft(t, s.DB, offerID))
	})

	s.Run("concurrency: never sells more units than exist", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500, Quantity: 3})

		payload, err := json.Marshal(map[string]any{"offer_id": offerID})
		require.NoError(t, err)

		const buyers = 10
		codes := make([]int, buyers)
		var wg sync.WaitGroup
		for i := range buyers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRawRequest(t, s.Router, http.MethodPost, reservationsURL, payload, true, nil)
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		counts := map[int]int{}
		for _, c := range codes {
			counts[c]++
		}
		require.Equal(t, 3, counts[http.StatusCreated], "codes: %v", codes)
		require.Equal(t, buyers-3, counts[http.StatusConflict], "codes: %v", codes)
		require.Equal(t, 0, dbtest.OfferQtyLeft(t, s.DB, offerID))
	})

	s.Run("error: expired, archived and unknown offers", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		expired := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500, ExpiresAt: time.Now().Add(-time.Minute)})

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{"offer_id": expired}, nil)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "offer_unavailable")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{"offer_id": uuid.New()}, nil)
		httptest.AssertErrorCode(t, rec, http.StatusNotFound, "offer_not_found")
	})

	s.Run("error: offers of an archived restaurant keep their stock", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500, Quantity: 2})

		admin := map[string]string{"X-Admin-Key": s.Config.Admin.APIKey}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/v1/admin/restaurants/"+restaurantID.String()+"/archive", nil, admin)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{"offer_id": offerID}, nil)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "offer_unavailable")
		require.Equal(t, 2, dbtest.OfferQtyLeft(t, s.DB, offerID))
	})

	s.Run("idempotency: replay returns the same reservation once", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500, Quantity: 5})
		headers := map[string]string{api.HeaderIdempotencyKey: uuid.NewString()}

		code, first := s.reserve(offerID, headers)
		require.Equal(t, http.StatusCreated, code)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{"offer_id": offerID, "buyer_id": "tg:42"}, headers)
		var second response.ReserveResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &second)
		httptest.AssertHeaders(t, rec, map[string]string{api.HeaderIdempotentReplay: "true"})
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, first.Code, second.Code)
		require.Equal(t, 4, dbtest.OfferQtyLeft(t, s.DB, offerID))

		other := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500})
		code, _ = s.reserve(other, headers)
		require.Equal(t, http.StatusConflict, code)
	})
}

// =============================================================================
// Redeem
// =============================================================================

func (s *ReservationSuite) TestRedeem() {
	s.Run("success: redeeming twice is idempotent and keeps quantity", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500, Quantity: 2})
		_, reserved := s.reserve(offerID, nil)
		headers := httptest.MerchantHeaders(restaurantID.String(), merchantKey)
		req := map[string]any{"reservation_id": reserved.ID, "code": reserved.Code}

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, req, headers)
		var first response.RedeemResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &first)
		require.Equal(t, "redeemed", first.Status)
		require.False(t, first.AlreadyRedeemed)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, req, headers)
		var second response.RedeemResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &second)
		require.True(t, second.AlreadyRedeemed)
		require.Equal(t, first.RedeemedAt.Unix(), second.RedeemedAt.Unix())

		require.Equal(t, 1, dbtest.OfferQtyLeft(t, s.DB, offerID))
	})

	s.Run("success: by ticket alone", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500})
		_, reserved := s.reserve(offerID, nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, map[string]any{"ticket": reserved.Ticket}, httptest.MerchantHeaders(restaurantID.String(), merchantKey))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, "redeemed", dbtest.ReservationStatus(t, s.DB, reserved.ID))
	})

	s.Run("error: expiry wins and is persisted", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500})
		_, reserved := s.reserve(offerID, nil)
		dbtest.ExpireReservation(t, s.DB, reserved.ID)
		headers := httptest.MerchantHeaders(restaurantID.String(), merchantKey)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, map[string]any{"reservation_id": reserved.ID, "code": reserved.Code}, headers)
		httptest.AssertErrorResponse(t, rec, http.StatusGone, "Reservation has expired")
		require.Equal(t, "expired", dbtest.ReservationStatus(t, s.DB, reserved.ID))
		require.Equal(t, 0, dbtest.OfferQtyLeft(t, s.DB, offerID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(merchantResURL, reserved.ID), nil, headers)
		var view response.ReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)
		require.Equal(t, "expired", view.Status)
	})

	s.Run("error: wrong code and other restaurant", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Corner Bakery", merchantKey)
		otherID := dbtest.CreateTestRestaurant(t, s.DB, "Other Place", "other-key")
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{RestaurantID: restaurantID, PriceCents: 500})
		_, reserved := s.reserve(offerID, nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"reservation_id": reserved.ID, "code": "ZZZZZZZZ"}, httptest.MerchantHeaders(restaurantID.String(), merchantKey))
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Redemption code does not match")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"reservation_id": reserved.ID, "code": reserved.Code}, httptest.MerchantHeaders(otherID.String(), "other-key"))
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Reservation not found")

		require.Equal(t, "reserved", dbtest.ReservationStatus(t, s.DB, reserved.ID))
	})
}
