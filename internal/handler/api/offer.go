package api

import (
	"net/http"

	"foody/internal/domain/pricing"
	reqdto "foody/internal/handler/dto/request"
	resdto "foody/internal/handler/dto/response"
	"foody/internal/handler/httperr"
	"foody/internal/pkg/clock"
	"foody/internal/usecase/commands"
	"foody/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	cmds  commands.OfferCommands
	q     queries.OfferQueries
	calc  pricing.Calculator
	clock clock.Clock
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries, calc pricing.Calculator, clk clock.Clock) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q, calc: calc, clock: clk}
}

// @Summary List active offers
// @Description Offers that can still be reserved, soonest expiry first, each with its live price
// @Tags offers
// @Produce json
// @Param restaurant_id query string false "Restaurant ID"
// @Param limit query int false "Max items"
// @Success 200 {object} resdto.OfferListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/offers [get]
func (h *OfferHandler) ListActive(c *gin.Context) {
	var restaurantID *uuid.UUID
	if v := c.Query("restaurant_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQueryUUID, "Invalid restaurant id", nil)
			return
		}
		restaurantID = &id
	}
	limit, ok := listLimit(c)
	if !ok {
		return
	}

	offers, err := h.q.ListActive(c.Request.Context(), restaurantID, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferViews(offers))
}

// @Summary Get offer
// @Description Get an active offer with its live price
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid offer id")
	if !ok {
		return
	}
	offer, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(offer))
}

// @Summary List restaurant offers
// @Description All non-archived offers of the authenticated restaurant, sold out and expired included
// @Tags merchant
// @Produce json
// @Security MerchantKey
// @Success 200 {object} resdto.OfferListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/v1/merchant/offers [get]
func (h *OfferHandler) ListMine(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	offers, err := h.q.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferViews(offers))
}

// @Summary Create offer
// @Tags merchant
// @Accept json
// @Produce json
// @Security MerchantKey
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/v1/merchant/offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	o, err := h.cmds.Create(c.Request.Context(), restaurantID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOffer(o, o.LivePriceCents(h.calc, h.clock.Now())))
}

// @Summary Archive offer
// @Description Hide an offer from buyers. Archiving twice is a no-op.
// @Tags merchant
// @Produce json
// @Security MerchantKey
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/merchant/offers/{id}/archive [post]
func (h *OfferHandler) Archive(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	offerID, ok := pathUUID(c, "id", "Invalid offer id")
	if !ok {
		return
	}

	o, err := h.cmds.Archive(c.Request.Context(), restaurantID, offerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o, o.LivePriceCents(h.calc, h.clock.Now())))
}

// @Summary Adjust remaining quantity
// @Description Merchant correction of the remaining quantity, bounded by the offer total
// @Tags merchant
// @Accept json
// @Produce json
// @Security MerchantKey
// @Param id path string true "Offer ID"
// @Param request body reqdto.AdjustQuantityRequest true "Remaining quantity"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/merchant/offers/{id}/quantity [put]
func (h *OfferHandler) AdjustQuantity(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	offerID, ok := pathUUID(c, "id", "Invalid offer id")
	if !ok {
		return
	}
	var req reqdto.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	o, err := h.cmds.AdjustQuantity(c.Request.Context(), restaurantID, offerID, *req.QtyLeft)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o, o.LivePriceCents(h.calc, h.clock.Now())))
}
