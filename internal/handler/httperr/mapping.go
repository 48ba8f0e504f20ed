package httperr

import (
	"log/slog"
	"net/http"

	"foody/internal/pkg/errs"
	"foody/internal/usecase/commands"
	"foody/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: the first matching sentinel wins.
var mappings = []mapping{
	{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, "internal", "Internal server error"},
	{errs.ErrOfferNotFound, http.StatusNotFound, "offer_not_found", "Offer not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "reservation_not_found", "Reservation not found"},
	{errs.ErrRestaurantNotFound, http.StatusNotFound, "restaurant_not_found", "Restaurant not found"},
	{errs.ErrOfferUnavailable, http.StatusConflict, "offer_unavailable", "Offer is no longer available"},
	{errs.ErrSoldOut, http.StatusConflict, "sold_out", "Offer is sold out"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "idempotency_key_reused", "Idempotency key was used for a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "idempotency_in_progress", "Reservation request is currently being processed"},
	{errs.ErrCodeMismatch, http.StatusBadRequest, "code_mismatch", "Redemption code does not match"},
	{errs.ErrReservationExpired, http.StatusGone, "reservation_expired", "Reservation has expired"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Unauthorized"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "validation_failed", "Validation failed"},
	{commands.ErrInvalidTicket, http.StatusBadRequest, "invalid_ticket", "Invalid ticket"},
	{commands.ErrMissingRedemptionRef, http.StatusBadRequest, "missing_redemption_ref", "Reservation id, code or ticket is required"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor", "Invalid cursor"},
	{queries.ErrInvalidStatus, http.StatusBadRequest, "invalid_status", "Invalid status filter"},
}

var internalFailure = mapping{status: http.StatusInternalServerError, code: "internal", message: "Internal server error"}

func lookup(err error) mapping {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m
		}
	}
	return internalFailure
}

// StatusFor maps a use case error to its HTTP status and public message.
// Anything unrecognised, code generation exhaustion included, is an internal failure.
func StatusFor(err error) (int, string) {
	m := lookup(err)
	return m.status, m.message
}

// Abort writes the mapped error response. Only internal failures are logged
// at error level, with a short stack for diagnosis.
func Abort(c *gin.Context, err error) {
	m := lookup(err)
	if m.status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"error", err,
			"stack", errs.ExtractStackLines(err, 12),
		)
	}
	abort(c, err, newResponse(m.status, m.code, m.message, nil))
}
