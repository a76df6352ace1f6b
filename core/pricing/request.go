// Package pricing - Pricing request
package pricing

import (
	"github.com/shopspring/decimal"

	"logirate/internal/errors"
)

// StandardPeriods are the period lengths offered by the commercial form.
// Compute accepts any positive period; this list only drives UI choices.
var StandardPeriods = []int{7, 15, 30, 60, 90, 180, 365}

// Request describes a commercial storage operation to be priced.
// It is an immutable value: the caller rebuilds it on each edit and re-runs
// Compute, which is cheap enough to do on every keystroke.
type Request struct {
	// Area is the contracted floor area in m²
	Area decimal.Decimal `json:"area"`

	// PeriodDays is the contracted storage period in days
	PeriodDays int `json:"period_days"`

	// RateKey references a catalog entry
	RateKey string `json:"rate_key,omitempty"`

	// StorageRateOverride supersedes the catalog base rate when positive
	StorageRateOverride decimal.Decimal `json:"storage_rate_override,omitempty"`

	// MovementRatePerArea is the in/out movement fee per m²
	MovementRatePerArea decimal.Decimal `json:"movement_rate_per_area,omitempty"`

	// HandlingUnitValue is the fee charged per handled unit
	HandlingUnitValue decimal.Decimal `json:"handling_unit_value,omitempty"`

	// HandlingUnitCount is the number of handled units
	HandlingUnitCount int `json:"handling_unit_count,omitempty"`

	// PalletPositions is the number of reserved pallet positions
	PalletPositions int `json:"pallet_positions,omitempty"`

	// ProductValue is the declared cargo value used for insurance
	ProductValue decimal.Decimal `json:"product_value,omitempty"`

	// InsuranceRatePercent is the ad-valorem insurance rate (percent)
	InsuranceRatePercent decimal.Decimal `json:"insurance_rate_percent,omitempty"`
}

// Validate rejects structurally invalid requests. Negative values are never
// clamped: the offending field is named so the form can highlight it.
func (r *Request) Validate() error {
	if r.Area.IsNegative() {
		return errors.InvalidRequest("area", "area must not be negative")
	}
	if r.PeriodDays <= 0 {
		return errors.InvalidRequest("period_days", "period_days must be a positive integer")
	}
	if r.StorageRateOverride.IsNegative() {
		return errors.InvalidRequest("storage_rate_override", "storage_rate_override must not be negative")
	}
	if r.MovementRatePerArea.IsNegative() {
		return errors.InvalidRequest("movement_rate_per_area", "movement_rate_per_area must not be negative")
	}
	if r.HandlingUnitValue.IsNegative() {
		return errors.InvalidRequest("handling_unit_value", "handling_unit_value must not be negative")
	}
	if r.HandlingUnitCount < 0 {
		return errors.InvalidRequest("handling_unit_count", "handling_unit_count must not be negative")
	}
	if r.PalletPositions < 0 {
		return errors.InvalidRequest("pallet_positions", "pallet_positions must not be negative")
	}
	if r.ProductValue.IsNegative() {
		return errors.InvalidRequest("product_value", "product_value must not be negative")
	}
	if r.InsuranceRatePercent.IsNegative() {
		return errors.InvalidRequest("insurance_rate_percent", "insurance_rate_percent must not be negative")
	}
	return nil
}
