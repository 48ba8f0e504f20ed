package shared

import (
	"context"
	"time"

	"foody/internal/domain/offer"
	"foody/internal/domain/reservation"
	"foody/internal/domain/restaurant"
	sqlc "foody/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations, retried on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinOnce: Same transaction without retries, for operations whose outcome must be reported as-is
	WithinOnce(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Offers() OfferRepository
	Reservations() ReservationRepository
	Restaurants() RestaurantRepository
	ReservationRequests() ReservationRequestRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	OfferByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
	RestaurantByID(ctx context.Context, id uuid.UUID) (*RestaurantSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type OfferRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error
	// DecrementRemaining takes one unit with a single conditional update and
	// returns what is left. No remaining unit yields an infra.KindConflict error.
	DecrementRemaining(ctx context.Context, tx sqlc.DBTX, offerID uuid.UUID) (int, error)
	SetRemaining(ctx context.Context, tx sqlc.DBTX, restaurantID, offerID uuid.UUID, qtyLeft int, now time.Time) (*offer.Offer, error)
	Archive(ctx context.Context, tx sqlc.DBTX, restaurantID, offerID uuid.UUID, now time.Time) (*offer.Offer, error)
}

type ReservationRepository interface {
	// Create inserts the reservation. A code collision yields an
	// infra.KindDuplicateKey error without aborting the transaction.
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, restaurantID, reservationID uuid.UUID) (*reservation.Reservation, error)
	FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, code reservation.Code) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type RestaurantRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *restaurant.Restaurant) error
	UpdateAPIKey(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, apiKeyHash string, now time.Time) error
	Archive(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, now time.Time) error
}

type ReservationRequestRepository interface {
	// Claim records the idempotency key and reports whether this call owns it.
	// A concurrent claim on the same key blocks until the owner finishes.
	Claim(ctx context.Context, tx sqlc.DBTX, key, offerID uuid.UUID, buyerID *string, now time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) (*ReservationRequestRecord, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, reservationID uuid.UUID) error
}
