package main

import (
	"context"
	"time"

	"warden/internal/errors"
	"warden/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

const migrateTimeout = 2 * time.Minute

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply all pending embedded SQL migrations to the configured PostgreSQL primary.`,
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	cmd.Println("Connecting to database...")
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer sqlDB.Close()

	cmd.Println("Running migrations...")
	if err := migrations.Up(ctx, sqlDB); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	cmd.Println("Migrations completed successfully")

	return nil
}
