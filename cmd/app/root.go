package main

import (
	"log/slog"
	"os"

	"workorders/cmd"
	"workorders/internal/adapters/out/assetfile"
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/core/domain/model/asset"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// commandContext lazily loads what the subcommands share.
type commandContext struct {
	envFile string

	cfg    *cmd.Config
	logger *slog.Logger
}

func (c *commandContext) config() (cmd.Config, error) {
	if c.cfg != nil {
		return *c.cfg, nil
	}
	cfg, err := cmd.LoadConfig(c.envFile)
	if err != nil {
		return cmd.Config{}, err
	}
	c.cfg = &cfg
	return cfg, nil
}

func (c *commandContext) log() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	logger, err := cmd.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

func (c *commandContext) registry() (asset.Registry, error) {
	cfg, err := c.config()
	if err != nil {
		return asset.Registry{}, err
	}
	return assetfile.Load(cfg.AssetsFile)
}

func (c *commandContext) database() (*gorm.DB, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	logger, err := c.log()
	if err != nil {
		return nil, err
	}
	return postgres.Open(cfg.DB, logger)
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "workorders",
		Short:         "Utility work orders with protected asset conflict screening",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.envFile, "env-file", ".env", "Optional dotenv file with configuration")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newMigrateCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newAssetsCommand(ctx))

	return rootCmd
}
