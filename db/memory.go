// Package db - In-memory collaborators
// Used by tests and by CLI runs without a configured database.
package db

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"logirate/core/proposal"
)

// Memory is an in-memory proposal store and usage meter
type Memory struct {
	mu        sync.Mutex
	proposals []*proposal.Proposal
	usage     map[string]int
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{usage: make(map[string]int)}
}

// Save stores a copy of the proposal with an assigned ID and timestamp
func (m *Memory) Save(ctx context.Context, prop *proposal.Proposal) (*proposal.Proposal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := *prop
	saved.ID = uuid.New().String()
	saved.CreatedAt = time.Now().UTC()
	m.proposals = append(m.proposals, &saved)
	return &saved, nil
}

// RecordUsage counts usage per actor
func (m *Memory) RecordUsage(ctx context.Context, actorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usage[actorID]++
	return nil
}

// Proposals returns the stored proposals in insertion order
func (m *Memory) Proposals() []*proposal.Proposal {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*proposal.Proposal, len(m.proposals))
	copy(out, m.proposals)
	return out
}

// UsageCount returns the number of usage events recorded for an actor
func (m *Memory) UsageCount(actorID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.usage[actorID]
}
