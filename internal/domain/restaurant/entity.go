package restaurant

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("restaurant name cannot be empty")
	ErrNameTooLong      = errors.New("restaurant name is too long (max 255 characters)")
	ErrMissingKeyHash   = errors.New("api key hash is required")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

const MaxNameLength = 255

// Location is stored for display only.
type Location struct {
	lat float64
	lng float64
}

func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 {
		return Location{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLongitude
	}
	return Location{lat: lat, lng: lng}, nil
}

func (l Location) Lat() float64 { return l.lat }
func (l Location) Lng() float64 { return l.lng }

type Restaurant struct {
	id         uuid.UUID
	name       string
	location   *Location
	apiKeyHash string
	archivedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRestaurant(name string, location *Location, apiKeyHash string, now time.Time) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if apiKeyHash == "" {
		return nil, ErrMissingKeyHash
	}
	return &Restaurant{
		id:         uuid.New(),
		name:       name,
		location:   location,
		apiKeyHash: apiKeyHash,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRestaurant(
	id uuid.UUID,
	name string,
	location *Location,
	apiKeyHash string,
	archivedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Restaurant {
	return &Restaurant{
		id:         id,
		name:       name,
		location:   location,
		apiKeyHash: apiKeyHash,
		archivedAt: archivedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Restaurant) IsArchived() bool { return r.archivedAt != nil }

func (r *Restaurant) ID() uuid.UUID          { return r.id }
func (r *Restaurant) Name() string           { return r.name }
func (r *Restaurant) Location() *Location    { return r.location }
func (r *Restaurant) APIKeyHash() string     { return r.apiKeyHash }
func (r *Restaurant) ArchivedAt() *time.Time { return r.archivedAt }
func (r *Restaurant) CreatedAt() time.Time   { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time   { return r.updatedAt }
