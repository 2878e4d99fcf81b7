package cli

import (
	"context"
	"fmt"

	"github.com/idealday/idr/engine/infra/postgres"
	"github.com/idealday/idr/pkg/config"
	"github.com/idealday/idr/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootCmd builds the idr command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "idr",
		Short:         "Ideal Day Roadmap API server",
		Long:          "idr serves the Ideal Day Roadmap HTTP API: 7-day coaching plans, module completions and the badge catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides IDR_LOG_LEVEL")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	root.PersistentFlags().String("env-file", "", "path to an env file loaded before configuration")
	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return root
}

// setup loads the env file and configuration, initializes logging and
// returns a context carrying the logger.
func setup(cmd *cobra.Command) (context.Context, *config.Config, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// a missing default .env is fine
		_ = godotenv.Load()
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if jsonLogs, _ := cmd.Flags().GetBool("log-json"); jsonLogs {
		cfg.Log.JSON = true
	}
	log := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	ctx := logger.ContextWithLogger(cmd.Context(), log)
	return ctx, cfg, nil
}

// storeConfig maps the application database config to the postgres driver.
func storeConfig(cfg *config.Config) *postgres.Config {
	return &postgres.Config{
		ConnString: cfg.Database.ConnString,
		Host:       cfg.Database.Host,
		Port:       cfg.Database.Port,
		User:       cfg.Database.User,
		Password:   cfg.Database.Password,
		DBName:     cfg.Database.Name,
		SSLMode:    cfg.Database.SSLMode,
	}
}
