package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/config"
	"github.com/Lumos-Labs-HQ/practicedb/internal/database"
	"github.com/Lumos-Labs-HQ/practicedb/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// loadConfig reads the config, applies the generation flags the command
// defines and starts the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyGenerationFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	if err := logger.Init(cfg.Log.Env, level); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, nil
}

func applyGenerationFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Lookup("profile") != nil && flags.Changed("profile") {
		cfg.Generation.Profile, _ = flags.GetString("profile")
		cfg.Generation.Domains = nil
	}
	if flags.Lookup("domains") != nil && flags.Changed("domains") {
		cfg.Generation.Domains, _ = flags.GetStringSlice("domains")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Generation.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Lookup("realism") != nil && flags.Changed("realism") {
		cfg.Generation.Realism, _ = flags.GetString("realism")
	}
	if flags.Lookup("batch") != nil && flags.Changed("batch") {
		cfg.Generation.BatchSize, _ = flags.GetInt("batch")
	}
}

func addDomainFlags(cmd *cobra.Command) {
	cmd.Flags().String("profile", "", "Domain profile: core or full")
	cmd.Flags().StringSlice("domains", nil, "Explicit domains (retail,hr,sales,education,finance,inventory)")
}

func openAdapter(ctx context.Context, cfg *config.Config) (database.DatabaseAdapter, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	adapter, err := database.Open(ctx, cfg.Database.Provider, dbURL)
	if err != nil {
		return nil, err
	}

	color.Cyan("🎯 Database: %s", cfg.Database.Provider)
	return adapter, nil
}
