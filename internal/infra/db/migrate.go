package db

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"foody/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies pending versioned migrations from cfg.MigrationsDir with the
// atlas CLI. The directory must carry an up to date atlas.sum.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	dir, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("failed to resolve migrations dir: %w", err)
	}

	client, err := atlasexec.NewClient(".", cfg.AtlasBin)
	if err != nil {
		return fmt.Errorf("failed to init atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + dir,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
