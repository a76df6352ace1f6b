// Package proposal - Materializer contract tests
package proposal

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"logirate/core/pricing"
	"logirate/internal/errors"
)

// stubStore records the save call and assigns an ID like a real store
type stubStore struct {
	saved    *Proposal
	failWith error
}

func (s *stubStore) Save(ctx context.Context, p *Proposal) (*Proposal, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	saved := *p
	saved.ID = "prop-1"
	saved.CreatedAt = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	s.saved = &saved
	return &saved, nil
}

// stubMeter records usage calls and optionally fails
type stubMeter struct {
	calls    []string
	failWith error
}

func (m *stubMeter) RecordUsage(ctx context.Context, actorID string) error {
	m.calls = append(m.calls, actorID)
	return m.failWith
}

func sampleBreakdown() pricing.Breakdown {
	return pricing.Breakdown{
		StorageValue: decimal.RequireFromString("2500"),
		Subtotal:     decimal.RequireFromString("2500"),
		AdminFee:     decimal.RequireFromString("250"),
		TotalValue:   decimal.RequireFromString("2750"),
		PeriodDays:   30,
		Currency:     pricing.CurrencyBRL,
	}
}

func TestMaterializeRequiresContact(t *testing.T) {
	store := &stubStore{}
	m := NewMaterializer(store, nil, nil)

	_, err := m.Materialize(context.Background(), Input{
		Breakdown: sampleBreakdown(),
	})
	if !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if store.saved != nil {
		t.Error("validation failure must not reach the store")
	}

	// A client reference alone satisfies the requirement
	if _, err := m.Materialize(context.Background(), Input{
		Breakdown: sampleBreakdown(),
		ClientRef: "client-7",
	}); err != nil {
		t.Fatalf("clientRef without contact name should succeed, got %v", err)
	}
}

func TestMaterializeDefaultsValidity(t *testing.T) {
	m := NewMaterializer(&stubStore{}, nil, nil)

	saved, err := m.Materialize(context.Background(), Input{
		Breakdown: sampleBreakdown(),
		Contact:   ContactInfo{Name: "ACME Ltda"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ValidityDays != DefaultValidityDays {
		t.Errorf("validity = %d, want %d", saved.ValidityDays, DefaultValidityDays)
	}

	saved, err = m.Materialize(context.Background(), Input{
		Breakdown:    sampleBreakdown(),
		Contact:      ContactInfo{Name: "ACME Ltda"},
		ValidityDays: 45,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ValidityDays != 45 {
		t.Errorf("validity = %d, want 45", saved.ValidityDays)
	}

	if _, err := m.Materialize(context.Background(), Input{
		Breakdown:    sampleBreakdown(),
		Contact:      ContactInfo{Name: "ACME Ltda"},
		ValidityDays: -1,
	}); !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("expected VALIDATION_ERROR for negative validity, got %v", err)
	}
}

func TestMaterializePropagatesPersistenceError(t *testing.T) {
	persistErr := errors.Persistence("saving proposal", nil)
	meter := &stubMeter{}
	m := NewMaterializer(&stubStore{failWith: persistErr}, meter, nil)

	_, err := m.Materialize(context.Background(), Input{
		Breakdown: sampleBreakdown(),
		Contact:   ContactInfo{Name: "ACME Ltda"},
		ActorID:   "user-1",
	})
	if err != persistErr {
		t.Fatalf("persistence error must propagate unchanged, got %v", err)
	}
	if len(meter.calls) != 0 {
		t.Error("metering must not run when persistence fails")
	}
}

// TestMaterializeMeteringFailureKeepsProposal proves the ordering contract:
// a metering failure after a successful save does not roll the proposal
// back.
func TestMaterializeMeteringFailureKeepsProposal(t *testing.T) {
	meter := &stubMeter{failWith: errors.Persistence("metering down", nil)}
	m := NewMaterializer(&stubStore{}, meter, nil)

	saved, err := m.Materialize(context.Background(), Input{
		Breakdown: sampleBreakdown(),
		Contact:   ContactInfo{Name: "ACME Ltda"},
		ActorID:   "user-1",
	})
	if err != nil {
		t.Fatalf("metering failure must not fail materialization: %v", err)
	}
	if saved == nil || saved.ID != "prop-1" {
		t.Fatalf("expected the persisted proposal, got %+v", saved)
	}
	if len(meter.calls) != 1 || meter.calls[0] != "user-1" {
		t.Errorf("metering calls = %v, want [user-1]", meter.calls)
	}
}

func TestMaterializeSkipsMeteringWithoutActor(t *testing.T) {
	meter := &stubMeter{}
	m := NewMaterializer(&stubStore{}, meter, nil)

	if _, err := m.Materialize(context.Background(), Input{
		Breakdown: sampleBreakdown(),
		Contact:   ContactInfo{Name: "ACME Ltda"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meter.calls) != 0 {
		t.Errorf("metering calls = %v, want none", meter.calls)
	}
}

// TestMaterializeSnapshotsBreakdown proves the stored breakdown is the
// point-in-time quote handed in, not a recomputation.
func TestMaterializeSnapshotsBreakdown(t *testing.T) {
	store := &stubStore{}
	m := NewMaterializer(store, nil, nil)

	breakdown := sampleBreakdown()
	saved, err := m.Materialize(context.Background(), Input{
		Request:   pricing.Request{Area: decimal.RequireFromString("100"), PeriodDays: 30},
		Breakdown: breakdown,
		Contact:   ContactInfo{Name: "ACME Ltda"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved.Breakdown.TotalValue.Equal(breakdown.TotalValue) {
		t.Errorf("stored total %s, want %s", saved.Breakdown.TotalValue, breakdown.TotalValue)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("store must assign CreatedAt")
	}
}
