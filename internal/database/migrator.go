package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// VersionTable records the applied migration sequence.
const VersionTable = "schoolsite_schema_version"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the PostgreSQL schema to the latest embedded version.
// SQLite and the memory store create their tables when opened.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(connectCtx, DSN(&cfg.Database))
	if err != nil {
		return fmt.Errorf("failed to connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := loadMigrator(ctx, conn)
	if err != nil {
		return err
	}

	m.OnStart = func(sequence int32, name, direction, _ string) {
		logger.Info().
			Int32("sequence", sequence).
			Str("name", name).
			Str("direction", direction).
			Msg("applying migration")
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate from version %d: %w", from, err)
	}

	to := int32(len(m.Migrations))
	logger.Info().
		Int32("from", from).
		Int32("to", to).
		Bool("changed", from != to).
		Msg("database schema ready")
	return nil
}

func loadMigrator(ctx context.Context, conn *pgx.Conn) (*tern.Migrator, error) {
	m, err := tern.NewMigrator(ctx, conn, VersionTable)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}

	files, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, err
	}
	if err := m.LoadMigrations(files); err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	return m, nil
}
