//go:build unit || e2e

package builder

import (
	"time"

	"foody/internal/domain/restaurant"
	reqdto "foody/internal/handler/dto/request"
	"foody/internal/usecase/queries"
	"foody/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	ID         uuid.UUID
	Name       string
	Lat        *float64
	Lng        *float64
	APIKeyHash string
	ArchivedAt *time.Time
	Now        time.Time
}

func NewRestaurantBuilder() *RestaurantBuilder {
	lat, lng := 52.52, 13.405
	return &RestaurantBuilder{
		ID:         uuid.New(),
		Name:       "Corner Bakery",
		Lat:        &lat,
		Lng:        &lng,
		APIKeyHash: "$2a$10$abcdefghijklmnopqrstuuBdHjU8CWXTnrMDyC2v1Wb3GBSmbrGoa",
		Now:        BaseTime,
	}
}

func (b *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(b)
	return b
}

func (b *RestaurantBuilder) WithoutLocation() *RestaurantBuilder {
	b.Lat = nil
	b.Lng = nil
	return b
}

func (b *RestaurantBuilder) Archived() *RestaurantBuilder {
	at := b.Now.Add(-time.Hour)
	b.ArchivedAt = &at
	return b
}

// Build methods
func (b *RestaurantBuilder) BuildDomain() (*restaurant.Restaurant, error) {
	var loc *restaurant.Location
	if b.Lat != nil && b.Lng != nil {
		l, err := restaurant.NewLocation(*b.Lat, *b.Lng)
		if err != nil {
			return nil, err
		}
		loc = &l
	}
	return restaurant.NewRestaurant(b.Name, loc, b.APIKeyHash, b.Now)
}

func (b *RestaurantBuilder) BuildSnapshot() *shared.RestaurantSnapshot {
	return &shared.RestaurantSnapshot{
		ID:         b.ID,
		Name:       b.Name,
		APIKeyHash: b.APIKeyHash,
		ArchivedAt: b.ArchivedAt,
	}
}

func (b *RestaurantBuilder) BuildView() *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:         b.ID,
		Name:       b.Name,
		Lat:        b.Lat,
		Lng:        b.Lng,
		APIKeyHash: b.APIKeyHash,
		ArchivedAt: b.ArchivedAt,
		CreatedAt:  b.Now,
	}
}

func (b *RestaurantBuilder) BuildRegisterRequestDTO() reqdto.RegisterRestaurantRequest {
	return reqdto.RegisterRestaurantRequest{
		Name: b.Name,
		Lat:  b.Lat,
		Lng:  b.Lng,
	}
}
