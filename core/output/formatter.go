// Package output produces human and machine-readable quote output.
// Display rounding to two decimals happens here and nowhere earlier.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"logirate/core/catalog"
	"logirate/core/pricing"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// QuoteResult bundles a priced request with its catalog context
type QuoteResult struct {
	// Request is the priced request
	Request pricing.Request `json:"request"`

	// Breakdown is the computed breakdown
	Breakdown pricing.Breakdown `json:"breakdown"`

	// Entry is the catalog entry used, nil when an override was applied
	Entry *catalog.Entry `json:"entry,omitempty"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *QuoteResult) error
}

// NewFormatter returns the formatter for a format name
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// JSONFormatter renders the result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the result as JSON
func (f *JSONFormatter) Render(w io.Writer, result *QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// TableFormatter renders the result as a CLI table
type TableFormatter struct{}

// Format returns the format type
func (f *TableFormatter) Format() Format { return FormatCLI }

// Render writes the itemized breakdown as a box table
func (f *TableFormatter) Render(w io.Writer, result *QuoteResult) error {
	b := &result.Breakdown
	cur := b.Currency.String()

	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                   STORAGE PRICING QUOTE                  │")
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────┤")

	if result.Entry != nil {
		row(w, "Rate", fmt.Sprintf("%s (%s)", result.Entry.Key, result.Entry.Category))
		if result.Entry.TemperatureRange != "" {
			row(w, "Temperature", result.Entry.TemperatureRange)
		}
	} else {
		row(w, "Rate", "manual override")
	}
	row(w, "Period", fmt.Sprintf("%d days", b.PeriodDays))
	row(w, "Daily rate", money(cur, b.DailyRate))

	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────┤")
	row(w, "Storage", money(cur, b.StorageValue))
	row(w, "Pallet positions", money(cur, b.PalletValue))
	row(w, "Movement", money(cur, b.MovementValue))
	row(w, "Handling", money(cur, b.HandlingTotal))
	row(w, "Insurance", money(cur, b.InsuranceValue))
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────┤")
	row(w, "Subtotal", money(cur, b.Subtotal))
	row(w, "Admin fee (10%)", money(cur, b.AdminFee))
	row(w, "TOTAL", money(cur, b.TotalValue))
	row(w, "Monthly equivalent", money(cur, b.MonthlyEquivalent))
	fmt.Fprintln(w, "└──────────────────────────────────────────────────────────┘")

	return nil
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "│ %-28s %27s │\n", label, value)
}

func money(currency string, v decimal.Decimal) string {
	return currency + " " + v.StringFixed(2)
}
