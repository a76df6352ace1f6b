// Package pricing - Deterministic pricing computation
// Pure arithmetic over a request and a catalog entry. No I/O, no shared
// mutable state: safe to call concurrently and on every form edit.
package pricing

import (
	"github.com/shopspring/decimal"

	"logirate/core/catalog"
	"logirate/internal/errors"
)

// Commercial policy values. These are deliberately named package values
// rather than catalog data: the rate table varies per product, these do not.
var (
	// PalletDailyRate is the fixed daily fee per reserved pallet position
	PalletDailyRate = decimal.NewFromInt(8)

	// AdminFeeRate is the administrative fee applied over the subtotal
	AdminFeeRate = decimal.RequireFromString("0.10")

	// DaysPerMonth normalizes period pricing to the commercial 30-day month
	DaysPerMonth = decimal.NewFromInt(30)
)

// DefaultCurrency is applied to every breakdown
const DefaultCurrency = CurrencyBRL

// Engine computes breakdowns against a rate catalog
type Engine struct {
	source catalog.Source
}

// NewEngine creates an engine over a catalog source
func NewEngine(source catalog.Source) *Engine {
	return &Engine{source: source}
}

// Compute transforms a request into an itemized breakdown.
//
// The effective storage rate is the override when positive, otherwise the
// catalog base rate for the rate key. A request with no resolvable rate is
// only an error when it has area to price: the all-zero request is the
// live-preview state and yields an all-zero breakdown.
//
// Multiplications happen before the single division by 30 so that periods
// that are multiples of the commercial month price exactly.
func (e *Engine) Compute(req Request) (*Breakdown, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	effectiveRate, err := e.resolveRate(&req)
	if err != nil {
		return nil, err
	}

	days := decimal.NewFromInt(int64(req.PeriodDays))

	storageValue := req.Area.Mul(effectiveRate).Mul(days).Div(DaysPerMonth)
	palletValue := decimal.NewFromInt(int64(req.PalletPositions)).Mul(PalletDailyRate).Mul(days)
	movementValue := req.Area.Mul(req.MovementRatePerArea)
	handlingTotal := req.HandlingUnitValue.Mul(decimal.NewFromInt(int64(req.HandlingUnitCount)))
	insuranceValue := req.ProductValue.Mul(req.InsuranceRatePercent).Div(decimal.NewFromInt(100))

	subtotal := storageValue.
		Add(palletValue).
		Add(movementValue).
		Add(handlingTotal).
		Add(insuranceValue)
	adminFee := subtotal.Mul(AdminFeeRate)
	totalValue := subtotal.Add(adminFee)

	return &Breakdown{
		StorageValue:      storageValue,
		PalletValue:       palletValue,
		MovementValue:     movementValue,
		HandlingTotal:     handlingTotal,
		InsuranceValue:    insuranceValue,
		Subtotal:          subtotal,
		AdminFee:          adminFee,
		TotalValue:        totalValue,
		MonthlyEquivalent: totalValue.Mul(DaysPerMonth).Div(days),
		DailyRate:         effectiveRate.Div(DaysPerMonth),
		EffectiveRate:     effectiveRate,
		PeriodDays:        req.PeriodDays,
		Currency:          DefaultCurrency,
	}, nil
}

// resolveRate applies override precedence: a positive override wins and the
// catalog is never consulted.
func (e *Engine) resolveRate(req *Request) (decimal.Decimal, error) {
	if req.StorageRateOverride.IsPositive() {
		return req.StorageRateOverride, nil
	}

	if req.RateKey != "" && e.source != nil {
		entry, err := e.source.Lookup(req.RateKey)
		if err == nil {
			return entry.BaseRate, nil
		}
		if req.Area.IsPositive() {
			return decimal.Zero, errors.Wrap(errors.TypeInvalidRequest,
				"no storage rate available for request", err).WithContext("field", "rate_key")
		}
		return decimal.Zero, nil
	}

	if req.Area.IsPositive() {
		return decimal.Zero, errors.InvalidRequest("rate_key",
			"no storage rate available: set rate_key or storage_rate_override")
	}
	return decimal.Zero, nil
}
