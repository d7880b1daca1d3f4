package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/export"
	"github.com/Lumos-Labs-HQ/practicedb/internal/logger"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export fixture tables",
	Long: `
Export every fixture table for use outside SQL, for example in pandas.
Supported formats: json (default), csv

Examples:
  practicedb export
  practicedb export --csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		format := export.FormatJSON
		if csv, _ := cmd.Flags().GetBool("csv"); csv {
			format = export.FormatCSV
		}

		ctx := context.Background()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		exportPath, err := export.PerformExport(ctx, adapter, cfg.ExportPath, format)
		if err != nil {
			return err
		}

		if exportPath != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Export completed: %s\n", exportPath)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No export created (no fixture tables found)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Bool("json", false, "Export as a single JSON file (default)")
	exportCmd.Flags().Bool("csv", false, "Export as one CSV file per table")
}
