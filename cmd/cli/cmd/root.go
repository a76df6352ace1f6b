// Package cmd provides the CLI commands for logirate.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logirate/core/catalog"
	"logirate/internal/config"
	"logirate/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "logirate",
	Short: "Price logistics storage operations",
	Long: `logirate is a pricing engine for logistics storage and freight
operations. It computes deterministic, itemized quotes from the rate
catalog and materializes them into commercial proposals.

Examples:
  logirate quote --area 100 --days 30 --rate-key ambient-general
  logirate catalog --category refrigerated
  logirate proposal --area 50 --days 15 --rate-key frozen-deep --name "ACME Ltda"`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./logirate.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(proposalCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = "logirate.json"
	}

	loaded, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	loaded.FromEnv()
	cfg = loaded

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog builds the rate table from the configured file, or the
// built-in table when none is configured.
func loadCatalog() (*catalog.Table, error) {
	if cfg != nil && cfg.Catalog.Path != "" {
		return catalog.Load(cfg.Catalog.Path)
	}
	return catalog.Default(), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("logirate version %s\n", version)
	},
}
