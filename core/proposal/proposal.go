// Package proposal - Commercial proposal records and collaborators
package proposal

import (
	"context"
	"time"

	"logirate/core/pricing"
)

// ContactInfo is the contact snapshot stored on a proposal
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ClientSummary is the directory view of a registered client, used only to
// pre-fill contact data. The computation itself never needs it.
type ClientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Proposal is a persisted quote. The breakdown is a point-in-time snapshot:
// it is never recomputed after creation, and a revision is a new proposal.
type Proposal struct {
	// ID is assigned by the store on save
	ID string `json:"id"`

	// ClientRef optionally links a registered client
	ClientRef string `json:"client_ref,omitempty"`

	// Contact is the free-text contact snapshot
	Contact ContactInfo `json:"contact"`

	// ValidityDays is how long the quote stands
	ValidityDays int `json:"validity_days"`

	// Request is the priced request, snapshotted
	Request pricing.Request `json:"request"`

	// Breakdown is the computed quote, snapshotted
	Breakdown pricing.Breakdown `json:"breakdown"`

	// CreatedAt is assigned by the store on save
	CreatedAt time.Time `json:"created_at"`
}

// Store persists proposals. Save assigns ID and CreatedAt and returns the
// persisted record; implementations do not retry.
type Store interface {
	Save(ctx context.Context, p *Proposal) (*Proposal, error)
}

// UsageMeter records quota consumption. It is best-effort bookkeeping,
// outside the transactional boundary of proposal creation.
type UsageMeter interface {
	RecordUsage(ctx context.Context, actorID string) error
}

// ClientDirectory resolves client references for contact pre-fill
type ClientDirectory interface {
	Lookup(ctx context.Context, clientRef string) (*ClientSummary, error)
}
