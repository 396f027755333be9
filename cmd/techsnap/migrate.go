package main

import (
	"context"

	"github.com/spf13/cobra"

	pg "techsnap/internal/adapters/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireDatabase(); err != nil {
				return err
			}
			db, err := pg.Connect(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()
			return runMigrations(cmd.Context(), db)
		},
	}
}

func runMigrations(ctx context.Context, db *pg.DB) error {
	applied, err := db.Migrate(ctx)
	if err != nil {
		return err
	}
	logger.WithField("applied", applied).Info("migrations up to date")
	return nil
}
