package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"contributorsboard/config"
	"contributorsboard/internal/repository/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			db, err := openDB(cmd.Context(), cfg.DBUrl)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			config.NewLogger().Info("schema applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the database contents with a YAML dataset",
		Long: `seed applies the schema, then replaces every row with the given
dataset in one transaction. Without --file the built-in dataset is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ds, err := loadDataset(file)
			if err != nil {
				return err
			}
			db, err := openDB(cmd.Context(), cfg.DBUrl)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			if err := postgres.Seed(cmd.Context(), db, ds); err != nil {
				return err
			}
			config.NewLogger().Info("dataset seeded",
				"contributors", len(ds.Contributors),
				"town_halls", len(ds.TownHalls),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML dataset (default: built-in)")
	return cmd
}
