package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/meeting-mbti/internal/db"
)

func newMigrateCmd(app *cli) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServerConfig(configPath)
			if err != nil {
				return err
			}

			store, err := db.OpenStore(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer store.Close()

			app.logger.Info("schema up to date", zap.String("storage", cfg.StorageDriver))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", cfg.StorageDriver)
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "JSON config file; environment variables fill fields it leaves empty")
	return cmd
}
