package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foody/internal/infra/db"
	"foody/internal/pkg/apikey"
	"foody/internal/pkg/clock"
	"foody/internal/pkg/config"
	"foody/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := metrics.RegisterPoolStats(pool); err != nil {
		slog.Warn("pool metrics not registered", "error", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			slog.Info("database pool closed")
			return nil
		},
	})

	return pool, nil
}

// RunMigrations applies migrations/ through atlas before the server starts
// when DB_RUN_MIGRATIONS is set, then seeds demo data when DB_SEED_DEMO is set.
func RunMigrations(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, clk clock.Clock) {
	if !cfg.DB.RunMigrations && !cfg.DB.SeedDemo {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.DB.RunMigrations {
				if err := db.Migrate(ctx, cfg.DB); err != nil {
					return err
				}
			}
			if cfg.DB.SeedDemo {
				return seedDemo(ctx, cfg.DB, pool, clk.Now())
			}
			return nil
		},
	})
}

func seedDemo(ctx context.Context, cfg config.DBConfig, pool *pgxpool.Pool, now time.Time) error {
	key := cfg.SeedDemoAPIKey
	var (
		hash string
		err  error
	)
	if key == "" {
		key, hash, err = apikey.Generate()
	} else {
		hash, err = apikey.Hash(key)
	}
	if err != nil {
		return fmt.Errorf("failed to prepare demo api key: %w", err)
	}

	created, err := db.SeedDemo(ctx, pool, hash, now)
	if err != nil {
		return err
	}
	if created {
		slog.Info("demo data seeded", "restaurant_id", db.DemoRestaurantID, "offer_id", db.DemoOfferID, "api_key", key)
		return nil
	}
	slog.Info("demo restaurant already present", "restaurant_id", db.DemoRestaurantID)
	return nil
}
