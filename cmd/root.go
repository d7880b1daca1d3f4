package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	Version = "0.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════╗",
		"║                                                      ║",
		"║   ┌─┐┬─┐┌─┐┌─┐┌┬┐┬┌─┐┌─┐  ┌┬┐┌┐                      ║",
		"║   ├─┘├┬┘├─┤│   │ ││  ├┤    ││├┴┐                     ║",
		"║   ┴  ┴└─┴ ┴└─┘ ┴ ┴└─┘└─┘  ─┴┘└─┘                     ║",
		"║                                                      ║",
		"║     🧪 Synthetic SQL practice databases 🧪           ║",
		"║                                                      ║",
		"╚══════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                  ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "practicedb",
	Short: "Build a synthetic relational database for SQL practice",
	Long: `
practicedb (re)builds a practice database for SQL interview preparation.

Every run drops the fixture tables, recreates the schema, generates
customers, orders, employees, sales, students and ledger rows, loads them
parents first, creates the secondary indexes and runs a smoke battery.

Database Support:
- SQLite (default, cgo or pure Go)
- PostgreSQL
- MySQL`,
	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("practicedb version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./practicedb.config.json)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("practicedb.config")
	}

	if err := config.BindEnv(viper.GetViper()); err != nil {
		color.Yellow("⚠️  Could not bind environment overrides: %v", err)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			color.Yellow("⚠️  Could not read config file: %v", err)
		}
	}
}
