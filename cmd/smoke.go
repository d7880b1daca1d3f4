package cmd

import (
	"context"

	"github.com/Lumos-Labs-HQ/practicedb/internal/logger"
	"github.com/Lumos-Labs-HQ/practicedb/internal/smoke"
	"github.com/spf13/cobra"
)

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run the smoke query battery against the fixture",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		domains, err := cfg.Domains()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		_, err = smoke.NewRunner(adapter, domains, cmd.OutOrStdout()).Run(ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(smokeCmd)
	addDomainFlags(smokeCmd)
}
