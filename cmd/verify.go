package cmd

import (
	"context"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/logger"
	"github.com/Lumos-Labs-HQ/practicedb/internal/verify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check an existing fixture against its invariants",
	Long: `
Recompute order totals and item prices, check category parents, count
orphaned foreign keys and compare row counts with the configured targets.
Use the same profile and counts the fixture was generated with.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		genCfg, err := cfg.GeneratorConfig(time.Now())
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		report, err := verify.New(adapter, genCfg).Run(ctx)
		if err != nil {
			return err
		}
		report.Print(cmd.OutOrStdout())

		if err := report.Err(); err != nil {
			return err
		}
		color.Green("✅ Fixture is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	addDomainFlags(verifyCmd)
}
