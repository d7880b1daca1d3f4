package cmd

import (
	"context"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/fixture"
	"github.com/Lumos-Labs-HQ/practicedb/internal/logger"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Drop and rebuild the practice database",
	Long: `
Drop every fixture table, recreate the schema, generate all records, load
them parents first, create the indexes and run the smoke queries.

Examples:
  practicedb generate
  practicedb generate --seed 42 --realism pools
  practicedb generate --profile core --verify --no-smoke`,
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

		runVerify, _ := cmd.Flags().GetBool("verify")
		noSmoke, _ := cmd.Flags().GetBool("no-smoke")

		builder := fixture.NewBuilder(adapter, fixture.Options{
			Generator: genCfg,
			Realism:   cfg.Generation.Realism,
			BatchSize: cfg.Generation.BatchSize,
			Verify:    runVerify,
			Smoke:     !noSmoke,
		}, logger.Get(), cmd.OutOrStdout())

		summary, err := builder.Run(ctx)
		if err != nil {
			return err
		}

		fixture.PrintSummary(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
	generateCmd.Flags().String("realism", "", "Name source: faker or pools")
	generateCmd.Flags().Int("batch", 0, "Rows per insert statement")
	generateCmd.Flags().Bool("verify", false, "Check fixture invariants after loading")
	generateCmd.Flags().Bool("no-smoke", false, "Skip the smoke queries")
	addDomainFlags(generateCmd)
}
