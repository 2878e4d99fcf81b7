package cli

import (
	"github.com/idealday/idr/engine/catalog"
	"github.com/idealday/idr/engine/infra/postgres"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the module and badge catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			store, err := postgres.NewStore(ctx, storeConfig(cfg))
			if err != nil {
				return err
			}
			defer store.Close(ctx)
			return catalog.NewSeeder(store.Pool()).Seed(ctx)
		},
	}
}
