package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	DemoRestaurantID = uuid.MustParse("5eed0000-0000-4000-8000-000000000001")
	DemoOfferID      = uuid.MustParse("5eed0000-0000-4000-8000-000000000002")
)

const (
	demoOfferTTL        = 90 * time.Minute
	demoOfferPriceCents = 35000
	demoOfferQuantity   = 10
)

// Execer is satisfied by *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SeedDemo inserts a demo bakery and one offer expiring 90 minutes after now.
// Rows that already exist are left as they are; created reports whether the
// restaurant row was new, so apiKeyHash only applies on the first run.
func SeedDemo(ctx context.Context, db Execer, apiKeyHash string, now time.Time) (created bool, err error) {
	tag, err := db.Exec(ctx, `
		INSERT INTO restaurants (id, name, lat, lng, api_key_hash, created_at, updated_at)
		VALUES ($1, 'DEMO Bakery', 55.751, 37.618, $2, $3, $3)
		ON CONFLICT (id) DO NOTHING`,
		DemoRestaurantID, apiKeyHash, now)
	if err != nil {
		return false, fmt.Errorf("failed to seed demo restaurant: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO offers (id, restaurant_id, title, price_cents, qty_total, qty_left, expires_at, created_at, updated_at)
		VALUES ($1, $2, 'Pastry set', $3, $4, $4, $5, $6, $6)
		ON CONFLICT (id) DO NOTHING`,
		DemoOfferID, DemoRestaurantID, int64(demoOfferPriceCents), demoOfferQuantity, now.Add(demoOfferTTL), now)
	if err != nil {
		return false, fmt.Errorf("failed to seed demo offer: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
