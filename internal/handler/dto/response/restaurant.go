package response

import (
	"time"

	"foody/internal/domain/restaurant"

	"github.com/google/uuid"
)

type RestaurantResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Lat        *float64   `json:"lat,omitempty"`
	Lng        *float64   `json:"lng,omitempty"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// RegisterRestaurantResponse is the only response that ever carries the plain API key.
type RegisterRestaurantResponse struct {
	RestaurantResponse
	APIKey string `json:"api_key"`
}

type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}

func FromRestaurant(r *restaurant.Restaurant) RestaurantResponse {
	res := RestaurantResponse{
		ID:         r.ID(),
		Name:       r.Name(),
		ArchivedAt: r.ArchivedAt(),
		CreatedAt:  r.CreatedAt(),
	}
	if loc := r.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		res.Lat = &lat
		res.Lng = &lng
	}
	return res
}

func FromRegisteredRestaurant(r *restaurant.Restaurant, apiKey string) *RegisterRestaurantResponse {
	return &RegisterRestaurantResponse{
		RestaurantResponse: FromRestaurant(r),
		APIKey:             apiKey,
	}
}
