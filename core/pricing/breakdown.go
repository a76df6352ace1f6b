// Package pricing - Itemized pricing breakdown
package pricing

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Breakdown is the itemized result of pricing a request. It is a value
// type: once computed it is never mutated, and proposals snapshot it as a
// point-in-time quote. Amounts are kept unrounded; rounding happens only at
// display.
type Breakdown struct {
	// StorageValue = area × daily rate × period
	StorageValue decimal.Decimal `json:"storage_value"`

	// PalletValue = pallet positions × pallet daily rate × period
	PalletValue decimal.Decimal `json:"pallet_value"`

	// MovementValue = area × movement rate
	MovementValue decimal.Decimal `json:"movement_value"`

	// HandlingTotal = handling unit value × unit count
	HandlingTotal decimal.Decimal `json:"handling_total"`

	// InsuranceValue = product value × insurance rate / 100
	InsuranceValue decimal.Decimal `json:"insurance_value"`

	// Subtotal is the sum of the line items
	Subtotal decimal.Decimal `json:"subtotal"`

	// AdminFee = subtotal × AdminFeeRate
	AdminFee decimal.Decimal `json:"admin_fee"`

	// TotalValue = subtotal + admin fee, exactly
	TotalValue decimal.Decimal `json:"total_value"`

	// MonthlyEquivalent normalizes the total to a 30-day month
	MonthlyEquivalent decimal.Decimal `json:"monthly_equivalent"`

	// DailyRate is the effective storage rate divided by 30
	DailyRate decimal.Decimal `json:"daily_rate"`

	// EffectiveRate is the storage rate actually applied (override or catalog)
	EffectiveRate decimal.Decimal `json:"effective_rate"`

	// PeriodDays echoes the priced period
	PeriodDays int `json:"period_days"`

	// Currency is display metadata only
	Currency Currency `json:"currency"`
}

// IsZero reports whether every monetary field is exactly zero, the
// "nothing entered yet" live-preview state.
func (b *Breakdown) IsZero() bool {
	return b.TotalValue.IsZero() && b.Subtotal.IsZero() && b.DailyRate.IsZero()
}
