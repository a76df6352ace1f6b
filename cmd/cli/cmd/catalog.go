// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"logirate/core/catalog"
)

var catalogCategory string

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List rate catalog entries",
	Long: `List the storage rate catalog in declaration order.

Examples:
  logirate catalog
  logirate catalog --category pharmaceutical`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "filter by category")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	table, err := loadCatalog()
	if err != nil {
		return err
	}

	var entries []*catalog.Entry
	if catalogCategory != "" {
		entries = table.ListByCategory(catalog.Category(catalogCategory))
	} else {
		entries = table.Entries()
	}

	if len(entries) == 0 {
		fmt.Println("No catalog entries found.")
		return nil
	}

	fmt.Printf("%-24s %-15s %12s  %s\n", "KEY", "CATEGORY", "RATE/m²/30d", "TEMPERATURE")
	for _, e := range entries {
		fmt.Printf("%-24s %-15s %12s  %s\n",
			e.Key, e.Category, e.BaseRate.StringFixed(2), e.TemperatureRange)
		for _, ref := range e.LegislationRefs {
			fmt.Printf("    · %s\n", ref)
		}
	}
	fmt.Printf("\n%d entries\n", len(entries))
	return nil
}
