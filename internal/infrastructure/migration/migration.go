package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_export_jobs",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createExportJobs(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createExportJobs creates the export_jobs table if it doesn't exist
func createExportJobs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS export_jobs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			template TEXT NOT NULL,
			status TEXT NOT NULL,
			html_path TEXT NOT NULL DEFAULT '',
			pdf_path TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			document JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the table may already exist
		slog.Warn("Error creating export_jobs table (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured export_jobs table")
	return nil
}
