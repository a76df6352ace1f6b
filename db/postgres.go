// Package db - Persistence collaborators
// Postgres implementations of the proposal store, the usage meter, and the
// client directory. Request and breakdown are persisted as JSONB snapshots:
// a proposal is a point-in-time quote, never recomputed from live rates.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"logirate/core/proposal"
	"logirate/internal/errors"
)

// Postgres bundles the persistence collaborators over one connection pool
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens a connection pool and verifies connectivity
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Persistence("opening database", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		return nil, errors.Persistence("connecting to database", err)
	}
	return &Postgres{db: conn}, nil
}

// Close releases the connection pool
func (p *Postgres) Close() error {
	return p.db.Close()
}

// EnsureSchema creates the tables used by the collaborators
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS proposals (
			id            UUID PRIMARY KEY,
			client_ref    TEXT,
			contact_name  TEXT NOT NULL,
			contact_email TEXT,
			contact_phone TEXT,
			validity_days INTEGER NOT NULL,
			request       JSONB NOT NULL,
			breakdown     JSONB NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS usage_events (
			id          BIGSERIAL PRIMARY KEY,
			actor_id    TEXT NOT NULL,
			occurred_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id    TEXT PRIMARY KEY,
			name  TEXT NOT NULL,
			email TEXT,
			phone TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return errors.Persistence("creating schema", err)
		}
	}
	return nil
}

// Save persists a proposal, assigning its ID and creation time. The input
// is not mutated; the returned copy is the persisted record.
func (p *Postgres) Save(ctx context.Context, prop *proposal.Proposal) (*proposal.Proposal, error) {
	requestJSON, err := json.Marshal(prop.Request)
	if err != nil {
		return nil, errors.Internal("encoding request snapshot", err)
	}
	breakdownJSON, err := json.Marshal(prop.Breakdown)
	if err != nil {
		return nil, errors.Internal("encoding breakdown snapshot", err)
	}

	saved := *prop
	saved.ID = uuid.New().String()
	saved.CreatedAt = time.Now().UTC()

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO proposals
			(id, client_ref, contact_name, contact_email, contact_phone,
			 validity_days, request, breakdown, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		saved.ID, nullIfEmpty(saved.ClientRef),
		saved.Contact.Name, nullIfEmpty(saved.Contact.Email), nullIfEmpty(saved.Contact.Phone),
		saved.ValidityDays, requestJSON, breakdownJSON, saved.CreatedAt,
	)
	if err != nil {
		return nil, errors.Persistence("saving proposal", err)
	}
	return &saved, nil
}

// RecordUsage appends a usage event for the actor
func (p *Postgres) RecordUsage(ctx context.Context, actorID string) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO usage_events (actor_id, occurred_at) VALUES ($1, $2)`,
		actorID, time.Now().UTC(),
	)
	if err != nil {
		return errors.Persistence("recording usage", err)
	}
	return nil
}

// Lookup resolves a client reference from the directory
func (p *Postgres) Lookup(ctx context.Context, clientRef string) (*proposal.ClientSummary, error) {
	var (
		summary      proposal.ClientSummary
		email, phone sql.NullString
	)
	err := p.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone FROM clients WHERE id = $1`, clientRef,
	).Scan(&summary.ID, &summary.Name, &email, &phone)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("client", clientRef)
	}
	if err != nil {
		return nil, errors.Persistence("looking up client", err)
	}
	summary.Email = email.String
	summary.Phone = phone.String
	return &summary, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
