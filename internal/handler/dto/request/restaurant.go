package request

import "foody/internal/usecase/commands"

type RegisterRestaurantRequest struct {
	Name string   `json:"name" binding:"required,max=255"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

func (r RegisterRestaurantRequest) ToInput() commands.RegisterRestaurantInput {
	return commands.RegisterRestaurantInput{
		Name: r.Name,
		Lat:  r.Lat,
		Lng:  r.Lng,
	}
}
