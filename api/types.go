// Package api - Request/response types
package api

import (
	"logirate/core/catalog"
	"logirate/core/pricing"
	"logirate/core/proposal"
)

// QuoteRequest is the body of POST /quote. Numeric fields accept JSON
// numbers or strings; decimal parsing handles both.
type QuoteRequest = pricing.Request

// BreakdownResponse is the wire form of a breakdown: monetary fields are
// rendered with two decimals, the engine's display boundary.
type BreakdownResponse struct {
	StorageValue      string `json:"storage_value"`
	PalletValue       string `json:"pallet_value"`
	MovementValue     string `json:"movement_value"`
	HandlingTotal     string `json:"handling_total"`
	InsuranceValue    string `json:"insurance_value"`
	Subtotal          string `json:"subtotal"`
	AdminFee          string `json:"admin_fee"`
	TotalValue        string `json:"total_value"`
	MonthlyEquivalent string `json:"monthly_equivalent"`
	DailyRate         string `json:"daily_rate"`
	EffectiveRate     string `json:"effective_rate"`
	PeriodDays        int    `json:"period_days"`
	Currency          string `json:"currency"`
}

// QuoteResponse is the response of POST /quote
type QuoteResponse struct {
	Breakdown BreakdownResponse `json:"breakdown"`
	RateKey   string            `json:"rate_key,omitempty"`
}

// ProposalRequest is the body of POST /proposals
type ProposalRequest struct {
	Request      pricing.Request      `json:"request"`
	Contact      proposal.ContactInfo `json:"contact"`
	ClientRef    string               `json:"client_ref,omitempty"`
	ValidityDays int                  `json:"validity_days,omitempty"`
	ActorID      string               `json:"actor_id,omitempty"`
}

// ProposalResponse is the response of POST /proposals
type ProposalResponse struct {
	ID           string               `json:"id"`
	ClientRef    string               `json:"client_ref,omitempty"`
	Contact      proposal.ContactInfo `json:"contact"`
	ValidityDays int                  `json:"validity_days"`
	Breakdown    BreakdownResponse    `json:"breakdown"`
	CreatedAt    string               `json:"created_at"`
}

// RateResponse is the wire form of a catalog entry
type RateResponse struct {
	Key              string   `json:"key"`
	Category         string   `json:"category"`
	BaseRate         string   `json:"base_rate"`
	TemperatureRange string   `json:"temperature_range,omitempty"`
	LegislationRefs  []string `json:"legislation_refs,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
}

func mapBreakdown(b *pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		StorageValue:      b.StorageValue.StringFixed(2),
		PalletValue:       b.PalletValue.StringFixed(2),
		MovementValue:     b.MovementValue.StringFixed(2),
		HandlingTotal:     b.HandlingTotal.StringFixed(2),
		InsuranceValue:    b.InsuranceValue.StringFixed(2),
		Subtotal:          b.Subtotal.StringFixed(2),
		AdminFee:          b.AdminFee.StringFixed(2),
		TotalValue:        b.TotalValue.StringFixed(2),
		MonthlyEquivalent: b.MonthlyEquivalent.StringFixed(2),
		DailyRate:         b.DailyRate.StringFixed(4),
		EffectiveRate:     b.EffectiveRate.StringFixed(2),
		PeriodDays:        b.PeriodDays,
		Currency:          b.Currency.String(),
	}
}

func mapProposal(p *proposal.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:           p.ID,
		ClientRef:    p.ClientRef,
		Contact:      p.Contact,
		ValidityDays: p.ValidityDays,
		Breakdown:    mapBreakdown(&p.Breakdown),
		CreatedAt:    p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapRate(e *catalog.Entry) RateResponse {
	return RateResponse{
		Key:              e.Key,
		Category:         e.Category.String(),
		BaseRate:         e.BaseRate.StringFixed(2),
		TemperatureRange: e.TemperatureRange,
		LegislationRefs:  e.LegislationRefs,
		Requirements:     e.Requirements,
	}
}
