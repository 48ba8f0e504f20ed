package api

import (
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	reqdto "foody/internal/handler/dto/request"
	resdto "foody/internal/handler/dto/response"
	"foody/internal/handler/httperr"
	"foody/internal/usecase/commands"
	"foody/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderIdempotencyKey   = "Idempotency-Key"
	HeaderIdempotentReplay = "X-Idempotent-Replay"

	maxExportRows = 10000
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve one unit
// @Description Reserve one unit of an offer. A repeated Idempotency-Key replays the first reservation.
// @Tags reservations
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Success 200 {object} resdto.ReserveResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/v1/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var idempotencyKey *uuid.UUID
	if raw := c.GetHeader(HeaderIdempotencyKey); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidIDHeader, "Invalid idempotency key format", nil)
			return
		}
		idempotencyKey = &key
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(idempotencyKey))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		c.Header(HeaderIdempotentReplay, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReserveResult(result))
}

// @Summary Buyer reservations
// @Description Reservation history of a buyer, newest first
// @Tags reservations
// @Produce json
// @Param buyer_id path string true "Buyer ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/buyers/{buyer_id}/reservations [get]
func (h *ReservationHandler) ListByBuyer(c *gin.Context) {
	buyerID := strings.TrimSpace(c.Param("buyer_id"))
	limit, ok := listLimit(c)
	if !ok {
		return
	}

	items, next, err := h.q.ListByBuyer(c.Request.Context(), buyerID, listCursor(c), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

// @Summary Restaurant reservations
// @Tags merchant
// @Produce json
// @Security MerchantKey
// @Param status query string false "reserved, redeemed or expired"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/v1/merchant/reservations [get]
func (h *ReservationHandler) ListForRestaurant(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	limit, ok := listLimit(c)
	if !ok {
		return
	}

	items, next, err := h.q.ListByRestaurant(c.Request.Context(), restaurantID, statusFilter(c), listCursor(c), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

// @Summary Get restaurant reservation
// @Tags merchant
// @Produce json
// @Security MerchantKey
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/merchant/reservations/{id} [get]
func (h *ReservationHandler) GetForRestaurant(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "Invalid reservation id")
	if !ok {
		return
	}

	view, err := h.q.GetForRestaurant(c.Request.Context(), restaurantID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Export restaurant reservations
// @Description CSV export of the restaurant's reservations, newest first
// @Tags merchant
// @Produce text/csv
// @Security MerchantKey
// @Param status query string false "reserved, redeemed or expired"
// @Success 200 {string} string "CSV"
// @Failure 400 {object} httperr.Response
// @Router /api/v1/merchant/reservations/export [get]
func (h *ReservationHandler) Export(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	filters := statusFilter(c)

	// collect first so a failing page still yields a JSON error
	var rows []*queries.ReservationListItem
	var cursor *queries.Cursor
	for len(rows) < maxExportRows {
		items, next, err := h.q.ListByRestaurant(c.Request.Context(), restaurantID, filters, cursor, queries.MaxListLimit)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		rows = append(rows, items...)
		if next == nil {
			break
		}
		cursor = next
	}

	c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "offer_id", "offer_title", "buyer_id", "code", "status", "expires_at", "redeemed_at", "created_at"})
	for _, r := range rows {
		buyer := ""
		if r.BuyerID != nil {
			buyer = *r.BuyerID
		}
		redeemedAt := ""
		if r.RedeemedAt != nil {
			redeemedAt = r.RedeemedAt.UTC().Format(time.RFC3339)
		}
		_ = w.Write([]string{
			r.ID.String(),
			r.OfferID.String(),
			r.OfferTitle,
			buyer,
			r.Code,
			r.Status,
			r.ExpiresAt.UTC().Format(time.RFC3339),
			redeemedAt,
			r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
}

// @Summary Redeem by code or ticket
// @Description Redeem a reservation of the authenticated restaurant by its code, or by the QR ticket
// @Tags merchant
// @Accept json
// @Produce json
// @Security MerchantKey
// @Param request body reqdto.RedeemRequest true "Code or ticket"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/v1/merchant/reservations/redeem [post]
func (h *ReservationHandler) Redeem(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	h.redeem(c, restaurantID, req.ToInput())
}

// @Summary Redeem by reservation id
// @Tags merchant
// @Accept json
// @Produce json
// @Security MerchantKey
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RedeemByIDRequest true "Code"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/v1/merchant/reservations/{id}/redeem [post]
func (h *ReservationHandler) RedeemByID(c *gin.Context) {
	restaurantID, ok := merchantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "Invalid reservation id")
	if !ok {
		return
	}
	var req reqdto.RedeemByIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	h.redeem(c, restaurantID, req.ToInput(id))
}

func (h *ReservationHandler) redeem(c *gin.Context, restaurantID uuid.UUID, in commands.RedeemInput) {
	result, err := h.cmds.Redeem(c.Request.Context(), restaurantID, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

func statusFilter(c *gin.Context) queries.ReservationFilters {
	var filters queries.ReservationFilters
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		filters.Status = &s
	}
	return filters
}
