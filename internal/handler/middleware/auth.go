package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"foody/internal/handler/httperr"
	"foody/internal/pkg/config"
	"foody/internal/pkg/errs"
	"foody/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRestaurantID = "X-Restaurant-ID"
	HeaderAPIKey       = "X-API-Key"
	HeaderAdminKey     = "X-Admin-Key"

	ctxRestaurantIDKey = "restaurant_id"
)

var errAdminKeyInvalid = errors.New("admin key invalid")

type AuthMiddleware struct {
	merchants usecase.MerchantAuthenticator
	adminKey  string
}

func NewAuthMiddleware(merchants usecase.MerchantAuthenticator, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		merchants: merchants,
		adminKey:  cfg.Admin.APIKey,
	}
}

// RequireMerchant authenticates a restaurant by X-Restaurant-ID and X-API-Key.
func (m *AuthMiddleware) RequireMerchant() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID, err := uuid.Parse(c.GetHeader(HeaderRestaurantID))
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Restaurant credentials required", nil)
			return
		}
		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Restaurant credentials required", nil)
			return
		}

		if err := m.merchants.Authenticate(c.Request.Context(), restaurantID, key); err != nil {
			if errs.Is(err, errs.ErrUnauthorized) {
				slog.Warn("Merchant authentication failed", "restaurant_id", restaurantID.String())
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid restaurant credentials", nil)
				return
			}
			httperr.Abort(c, err)
			return
		}

		c.Set(ctxRestaurantIDKey, restaurantID)
		c.Next()
	}
}

// RequireAdmin checks the static administrative key.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAdminKey)
		if m.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.adminKey)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminKeyInvalid, "Invalid admin key", nil)
			return
		}
		c.Next()
	}
}

func GetRestaurantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxRestaurantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
