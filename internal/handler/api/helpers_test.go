//go:build unit

package api_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeMerchant stands in for RequireMerchant: any X-API-Key header authenticates as restaurantID.
func fakeMerchant(restaurantID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-API-Key") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("restaurant_id", restaurantID)
		c.Next()
	}
}

func merchantHeaders() map[string]string {
	return map[string]string{"X-API-Key": "test-key"}
}
