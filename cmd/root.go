package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotelops/config"
	"hotelops/logger"
)

// NewRootCommand creates the hotelops CLI. Without a subcommand it serves
// the API.
func NewRootCommand() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "hotelops",
		Short:         "Multi-tenant hotel operations API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "%s not loaded, using process environment\n", envFile)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading configuration")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logger.L().Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, initializes logging and opens the database.
// skipMigrate overrides DB_AUTO_MIGRATE.
func bootstrap(skipMigrate bool) (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("configuration loaded", cfg.LogFields()...)

	dbCfg := cfg.DB
	if skipMigrate {
		dbCfg.AutoMigrate = false
	}
	db, err := config.ConnectDatabase(dbCfg, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("database connection established", zap.String("driver", dbCfg.Driver))
	return cfg, log, db, nil
}
