package cli

import (
	"github.com/idealday/idr/engine/infra/postgres"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			return postgres.ApplyMigrations(ctx, storeConfig(cfg).DSN())
		},
	}
}
