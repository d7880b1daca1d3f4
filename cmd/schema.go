package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/logger"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the fixture schema",
	Long: `
Print the DDL for the enabled tables and indexes, or a dialect-neutral YAML
description of them.

Examples:
  practicedb schema
  practicedb schema --dialect postgres
  practicedb schema --profile core --format yaml`,
	Args: cobra.NoArgs,
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
		tables := schema.TablesFor(domains)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "yaml":
			out, err := schema.NewDocument(tables).YAML()
			if err != nil {
				return fmt.Errorf("failed to render yaml: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		case "sql":
			provider, _ := cmd.Flags().GetString("dialect")
			if provider == "" {
				provider = cfg.Database.Provider
			}
			dialect, err := schema.DialectFor(provider)
			if err != nil {
				return err
			}
			script, err := dialect.Script(tables)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		default:
			return fmt.Errorf("unsupported format: %s (use sql or yaml)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().String("dialect", "", "SQL dialect: sqlite, postgres or mysql (defaults to the configured provider)")
	schemaCmd.Flags().String("format", "sql", "Output format: sql or yaml")
	addDomainFlags(schemaCmd)
}
