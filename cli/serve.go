package cli

import (
	"os/signal"
	"syscall"

	"github.com/idealday/idr/engine/infra/postgres"
	"github.com/idealday/idr/engine/infra/server"
	"github.com/idealday/idr/pkg/logger"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			dbCfg := storeConfig(cfg)
			if err := postgres.ApplyMigrations(ctx, dbCfg.DSN()); err != nil {
				return err
			}
			store, err := postgres.NewStore(ctx, dbCfg)
			if err != nil {
				return err
			}
			defer store.Close(ctx)
			srv := server.New(cfg, store, logger.FromContext(ctx))
			return srv.Run(ctx)
		},
	}
}
