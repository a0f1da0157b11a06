package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigrationsFS returns the embedded migrations directory.
func MigrationsFS() (fs.FS, error) {
	return fs.Sub(migrations, "migrations")
}

// Migrate brings the schema up to the latest embedded migration, or down to
// target when target is non-negative. It uses a single connection, not the pool.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, target int32) error {
	conn, err := pgx.Connect(ctx, DSN(cfg.Database))
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := MigrationsFS()
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	to := int32(len(m.Migrations))
	if target >= 0 {
		to = target
	}

	if from == to {
		logger.Info().Msgf("database schema up to date, version %d", to)
		return nil
	}

	if err := m.MigrateTo(ctx, to); err != nil {
		return fmt.Errorf("migrating from %d to %d: %w", from, to, err)
	}

	logger.Info().Msgf("migrated database schema, from %d to %d", from, to)
	return nil
}
