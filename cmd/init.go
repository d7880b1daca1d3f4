package cmd

import (
	"github.com/Lumos-Labs-HQ/practicedb/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default practicedb.config.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigFile
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}

		color.Green("✅ Created %s", path)
		color.Cyan("💡 Set DATABASE_URL to target Postgres or MySQL, then run: practicedb generate")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
