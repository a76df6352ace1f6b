// Package db - Memory store tests
package db

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"logirate/core/pricing"
	"logirate/core/proposal"
)

func TestMemorySaveAssignsIdentity(t *testing.T) {
	mem := NewMemory()

	p := &proposal.Proposal{
		Contact:      proposal.ContactInfo{Name: "ACME Ltda"},
		ValidityDays: 15,
		Breakdown: pricing.Breakdown{
			TotalValue: decimal.RequireFromString("2750"),
			Currency:   pricing.CurrencyBRL,
		},
	}

	saved, err := mem.Save(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected assigned id")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected assigned creation time")
	}
	if p.ID != "" {
		t.Error("input proposal must not be mutated")
	}

	stored := mem.Proposals()
	if len(stored) != 1 || stored[0].ID != saved.ID {
		t.Fatalf("stored = %+v, want the saved proposal", stored)
	}
}

func TestMemoryUsageMeter(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := mem.RecordUsage(ctx, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := mem.RecordUsage(ctx, "user-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mem.UsageCount("user-1"); got != 3 {
		t.Errorf("user-1 usage = %d, want 3", got)
	}
	if got := mem.UsageCount("user-2"); got != 1 {
		t.Errorf("user-2 usage = %d, want 1", got)
	}
	if got := mem.UsageCount("user-3"); got != 0 {
		t.Errorf("user-3 usage = %d, want 0", got)
	}
}
