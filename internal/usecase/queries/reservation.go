package queries

import (
	"context"
	"time"

	"foody/internal/domain/reservation"
	"foody/internal/infra"
	"foody/internal/pkg/clock"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRestaurantFirstPage(ctx context.Context, restaurantID uuid.UUID, status *string, limit int32) ([]*ReservationListItem, error)
	FindByRestaurantKeyset(ctx context.Context, restaurantID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByBuyerFirstPage(ctx context.Context, buyerID string, limit int32) ([]*ReservationListItem, error)
	FindByBuyerKeyset(ctx context.Context, buyerID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationFilters struct {
	Status *string
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// GetForRestaurant hides reservations of other restaurants behind ErrReservationNotFound.
	GetForRestaurant(ctx context.Context, restaurantID, id uuid.UUID) (*ReservationView, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, filters ReservationFilters, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	ListByBuyer(ctx context.Context, buyerID string, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		store: store,
		clock: clk,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	rv.Status = effectiveStatus(rv.Status, rv.ExpiresAt, q.clock.Now())
	return rv, nil
}

func (q *reservationQueriesImpl) GetForRestaurant(ctx context.Context, restaurantID, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rv.RestaurantID != restaurantID {
		return nil, ErrReservationNotFound
	}
	return rv, nil
}

func (q *reservationQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, filters ReservationFilters, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if filters.Status != nil {
		if !reservation.Status(*filters.Status).IsValid() {
			return nil, nil, ErrInvalidStatus
		}
	}

	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByRestaurantFirstPage(ctx, restaurantID, filters.Status, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByRestaurantKeyset(ctx, restaurantID, filters.Status, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, err
	}
	return q.page(rows, limit)
}

func (q *reservationQueriesImpl) ListByBuyer(ctx context.Context, buyerID string, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByBuyerFirstPage(ctx, buyerID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByBuyerKeyset(ctx, buyerID, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, err
	}
	return q.page(rows, limit)
}

func (q *reservationQueriesImpl) page(rows []*ReservationListItem, limit int) ([]*ReservationListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	now := q.clock.Now()
	for _, r := range rows {
		r.Status = effectiveStatus(r.Status, r.ExpiresAt, now)
	}
	return rows, next, nil
}

// Holds past their expiry are reported as expired before redemption persists it.
func effectiveStatus(stored string, expiresAt, now time.Time) string {
	if stored == reservation.StatusReserved.String() && !now.Before(expiresAt) {
		return reservation.StatusExpired.String()
	}
	return stored
}
