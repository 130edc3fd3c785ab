package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/database"
	"github.com/SergeyParamoshkin/articles/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the Postgres schema",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DB.Driver != config.DriverPostgres {
		return errors.New("migrate requires db.driver=postgres")
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DB.DSN, sugar)
	if err != nil {
		return err
	}
	defer database.Close(db) // nolint

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	sugar.Infow("schema migrated")

	return nil
}
