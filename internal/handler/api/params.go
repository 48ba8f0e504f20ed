package api

import (
	"errors"
	"net/http"
	"strconv"

	"foody/internal/handler/httperr"
	"foody/internal/handler/middleware"
	"foody/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidLimit     = errors.New("invalid limit")
	errMissingMerchant  = errors.New("restaurant missing from request context")
	errInvalidIDHeader  = errors.New("invalid idempotency key")
	errInvalidQueryUUID = errors.New("invalid uuid query parameter")
)

// pathUUID parses a path parameter and aborts with 400 when it is not a UUID.
func pathUUID(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}

func listLimit(c *gin.Context) (int, bool) {
	v := c.Query("limit")
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidLimit, "Invalid limit", nil)
		return 0, false
	}
	return queries.ValidateLimit(n), true
}

func listCursor(c *gin.Context) *queries.Cursor {
	if after := c.Query("cursor"); after != "" {
		return &queries.Cursor{After: after}
	}
	return nil
}

// merchantID returns the restaurant authenticated by RequireMerchant.
func merchantID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetRestaurantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingMerchant, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}
