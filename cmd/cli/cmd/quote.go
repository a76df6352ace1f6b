// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"logirate/core/catalog"
	"logirate/core/output"
	"logirate/core/pricing"
)

// requestFlags collects the pricing request fields shared by quote and
// proposal. Decimal flags are strings so values like "0.05" survive exactly.
type requestFlags struct {
	area          string
	days          int
	rateKey       string
	rateOverride  string
	movementRate  string
	handlingValue string
	handlingCount int
	pallets       int
	productValue  string
	insuranceRate string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.area, "area", "0", "storage area in m²")
	cmd.Flags().IntVar(&f.days, "days", 30, "storage period in days")
	cmd.Flags().StringVar(&f.rateKey, "rate-key", "", "catalog rate key")
	cmd.Flags().StringVar(&f.rateOverride, "rate", "", "manual storage rate, supersedes the catalog")
	cmd.Flags().StringVar(&f.movementRate, "movement-rate", "", "movement fee per m²")
	cmd.Flags().StringVar(&f.handlingValue, "handling-value", "", "fee per handled unit")
	cmd.Flags().IntVar(&f.handlingCount, "handling-count", 0, "number of handled units")
	cmd.Flags().IntVar(&f.pallets, "pallets", 0, "reserved pallet positions")
	cmd.Flags().StringVar(&f.productValue, "product-value", "", "declared cargo value for insurance")
	cmd.Flags().StringVar(&f.insuranceRate, "insurance-rate", "", "ad-valorem insurance rate (percent)")
}

func (f *requestFlags) build() (pricing.Request, error) {
	req := pricing.Request{
		PeriodDays:        f.days,
		RateKey:           f.rateKey,
		HandlingUnitCount: f.handlingCount,
		PalletPositions:   f.pallets,
	}

	fields := []struct {
		name  string
		raw   string
		value *decimal.Decimal
	}{
		{"area", f.area, &req.Area},
		{"rate", f.rateOverride, &req.StorageRateOverride},
		{"movement-rate", f.movementRate, &req.MovementRatePerArea},
		{"handling-value", f.handlingValue, &req.HandlingUnitValue},
		{"product-value", f.productValue, &req.ProductValue},
		{"insurance-rate", f.insuranceRate, &req.InsuranceRatePercent},
	}
	for _, field := range fields {
		if field.raw == "" {
			continue
		}
		v, err := decimal.NewFromString(field.raw)
		if err != nil {
			return pricing.Request{}, fmt.Errorf("invalid --%s value %q", field.name, field.raw)
		}
		*field.value = v
	}

	return req, nil
}

var (
	quoteFlags  requestFlags
	quoteFormat string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute an itemized storage quote",
	Long: `Compute a deterministic, itemized pricing breakdown for a storage
operation without persisting anything.

Examples:
  logirate quote --area 100 --days 30 --rate-key ambient-general
  logirate quote --area 50 --days 15 --rate 55 --pallets 10 --format json`,
	RunE: runQuote,
}

func init() {
	quoteFlags.register(quoteCmd)
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "cli", "output format (cli, json)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	req, err := quoteFlags.build()
	if err != nil {
		return err
	}

	table, err := loadCatalog()
	if err != nil {
		return err
	}

	breakdown, err := pricing.NewEngine(table).Compute(req)
	if err != nil {
		return err
	}

	var entry *catalog.Entry
	if req.RateKey != "" && !req.StorageRateOverride.IsPositive() {
		entry, _ = table.Lookup(req.RateKey)
	}

	formatter, err := output.NewFormatter(output.Format(quoteFormat))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &output.QuoteResult{
		Request:   req,
		Breakdown: *breakdown,
		Entry:     entry,
	})
}
