//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// inserts a restaurant whose API key is apiKey and returns its id
func CreateTestRestaurant(t *testing.T, db DBLike, name, apiKey string) uuid.UUID {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.MinCost)
	require.NoError(t, err)

	id := uuid.New()
	_, err = db.Exec(context.Background(),
		"INSERT INTO restaurants (id, name, api_key_hash) VALUES ($1, $2, $3)",
		id, name, string(hash))
	require.NoError(t, err)

	return id
}

type OfferFixture struct {
	RestaurantID       uuid.UUID
	Title              string
	PriceCents         int64
	OriginalPriceCents *int64
	Quantity           int
	ExpiresAt          time.Time
}

func CreateTestOffer(t *testing.T, db DBLike, f OfferFixture) uuid.UUID {
	t.Helper()

	if f.Title == "" {
		f.Title = "Surprise bag"
	}
	if f.Quantity == 0 {
		f.Quantity = 1
	}
	if f.ExpiresAt.IsZero() {
		f.ExpiresAt = time.Now().Add(3 * time.Hour)
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO offers (id, restaurant_id, title, price_cents, original_price_cents, qty_total, qty_left, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $7)`,
		id, f.RestaurantID, f.Title, f.PriceCents, f.OriginalPriceCents, f.Quantity, f.ExpiresAt)
	require.NoError(t, err)

	return id
}

// moves a reservation's hold into the past
func ExpireReservation(t *testing.T, db DBLike, reservationID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE reservations SET expires_at = now() - interval '1 minute' WHERE id = $1", reservationID)
	require.NoError(t, err)
}

func ReservationStatus(t *testing.T, db DBLike, reservationID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", reservationID).Scan(&status)
	require.NoError(t, err)
	return status
}

func OfferQtyLeft(t *testing.T, db DBLike, offerID uuid.UUID) int {
	t.Helper()

	var qty int
	err := db.QueryRow(context.Background(), "SELECT qty_left FROM offers WHERE id = $1", offerID).Scan(&qty)
	require.NoError(t, err)
	return qty
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
