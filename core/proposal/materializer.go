// Package proposal - Proposal materializer
// Single-shot creation: validate, persist, then meter. Persistence
// happens-before metering, and a metering failure never rolls the
// persisted proposal back.
package proposal

import (
	"context"

	"go.uber.org/zap"

	"logirate/core/pricing"
	"logirate/internal/errors"
)

// DefaultValidityDays is applied when the caller leaves validity unset
const DefaultValidityDays = 15

// Input carries everything needed to materialize a proposal
type Input struct {
	Request   pricing.Request
	Breakdown pricing.Breakdown
	Contact   ContactInfo
	ClientRef string

	// ValidityDays defaults to DefaultValidityDays when zero
	ValidityDays int

	// ActorID identifies who consumed quota; empty skips metering
	ActorID string
}

// Materializer turns computed breakdowns into persisted proposals
type Materializer struct {
	store Store
	meter UsageMeter
	log   *zap.Logger
}

// NewMaterializer creates a materializer. The meter may be nil when usage
// metering is not wired.
func NewMaterializer(store Store, meter UsageMeter, log *zap.Logger) *Materializer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Materializer{store: store, meter: meter, log: log}
}

// Materialize validates the input, persists the proposal, and records usage.
//
// Validation failures occur before any write. Persistence errors propagate
// unchanged: retry policy belongs to the caller. Metering runs only after a
// successful save; its failure is logged and the persisted proposal is still
// returned, since metering is best-effort bookkeeping.
func (m *Materializer) Materialize(ctx context.Context, in Input) (*Proposal, error) {
	if in.Contact.Name == "" && in.ClientRef == "" {
		return nil, errors.Validation("clientName or clientRef required")
	}
	if in.ValidityDays < 0 {
		return nil, errors.Validation("validityDays must be a positive integer")
	}

	validity := in.ValidityDays
	if validity == 0 {
		validity = DefaultValidityDays
	}

	p := &Proposal{
		ClientRef:    in.ClientRef,
		Contact:      in.Contact,
		ValidityDays: validity,
		Request:      in.Request,
		Breakdown:    in.Breakdown,
	}

	saved, err := m.store.Save(ctx, p)
	if err != nil {
		return nil, err
	}

	if m.meter != nil && in.ActorID != "" {
		if err := m.meter.RecordUsage(ctx, in.ActorID); err != nil {
			m.log.Warn("usage metering failed after proposal save",
				zap.String("proposal_id", saved.ID),
				zap.String("actor_id", in.ActorID),
				zap.Error(err))
		}
	}

	return saved, nil
}
