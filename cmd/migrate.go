package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/carson-networks/spaces-server/internal/config"
	"github.com/carson-networks/spaces-server/internal/storage"
	"github.com/carson-networks/spaces-server/internal/storage/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending Postgres migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if cfg.StoreBackend != config.BackendPostgres {
		return errors.New("migrations only apply to the postgres backend")
	}

	db, err := storage.OpenPostgres(cfg)
	if err != nil {
		logger.WithError(err).Error("storage.OpenPostgres")
		return err
	}
	defer db.Close()

	return migrations.Up(db, logger)
}
