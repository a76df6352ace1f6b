// Package catalog - Authoritative storage rate catalog
// Defines the canonical rate table keyed by (category, product subtype).
// This is the source of truth for base storage rates.
package catalog

import (
	"sync/atomic"

	"github.com/shopspring/decimal"

	"logirate/internal/errors"
)

// Category is the commercial grouping of a catalog entry
type Category string

const (
	CategoryAmbient        Category = "ambient"
	CategoryRefrigerated   Category = "refrigerated"
	CategoryFrozen         Category = "frozen"
	CategoryPharmaceutical Category = "pharmaceutical"
	CategoryHazardous      Category = "hazardous"
	CategoryAgricultural   Category = "agricultural"
	CategorySpecial        Category = "special"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// Entry is a catalog entry for a storable product subtype.
// BaseRate is currency per m² per 30-day period.
type Entry struct {
	Key              string          `json:"key"`
	Category         Category        `json:"category"`
	BaseRate         decimal.Decimal `json:"base_rate"`
	TemperatureRange string          `json:"temperature_range,omitempty"`
	LegislationRefs  []string        `json:"legislation_refs,omitempty"`
	Requirements     []string        `json:"requirements,omitempty"`
}

// Source is a read-only lookup over catalog entries.
// Implementations must be safe for concurrent readers.
type Source interface {
	// Lookup resolves a rate key, failing with a NOT_FOUND error when absent
	Lookup(key string) (*Entry, error)

	// ListByCategory returns entries in catalog-declaration order.
	// An unknown category yields an empty slice, not an error: category is a
	// free classification, not a validated foreign key.
	ListByCategory(category Category) []*Entry

	// Entries returns all entries in declaration order
	Entries() []*Entry
}

// Table is the default immutable Source. The loaded entry set is published
// through an atomic pointer so Replace is safe against concurrent readers
// without locking (load-then-publish).
type Table struct {
	state atomic.Pointer[tableState]
}

type tableState struct {
	order []*Entry
	byKey map[string]*Entry
}

// NewTable builds a table from entries, enforcing catalog invariants:
// unique keys and strictly positive base rates.
func NewTable(entries []*Entry) (*Table, error) {
	st, err := buildState(entries)
	if err != nil {
		return nil, err
	}
	t := &Table{}
	t.state.Store(st)
	return t, nil
}

// Replace atomically publishes a new entry set. Computations started before
// the swap keep observing the old table.
func (t *Table) Replace(entries []*Entry) error {
	st, err := buildState(entries)
	if err != nil {
		return err
	}
	t.state.Store(st)
	return nil
}

// Lookup resolves a rate key
func (t *Table) Lookup(key string) (*Entry, error) {
	st := t.state.Load()
	entry, ok := st.byKey[key]
	if !ok {
		return nil, errors.NotFound("rate", key)
	}
	return entry, nil
}

// ListByCategory returns entries for a category in declaration order
func (t *Table) ListByCategory(category Category) []*Entry {
	st := t.state.Load()
	matched := []*Entry{}
	for _, e := range st.order {
		if e.Category == category {
			matched = append(matched, e)
		}
	}
	return matched
}

// Entries returns all entries in declaration order
func (t *Table) Entries() []*Entry {
	st := t.state.Load()
	out := make([]*Entry, len(st.order))
	copy(out, st.order)
	return out
}

func buildState(entries []*Entry) (*tableState, error) {
	st := &tableState{
		byKey: make(map[string]*Entry, len(entries)),
	}
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, dup := st.byKey[e.Key]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate rate key: %s", e.Key)
		}
		st.byKey[e.Key] = e
		st.order = append(st.order, e)
	}
	return st, nil
}

func validateEntry(e *Entry) error {
	if e.Key == "" {
		return errors.New(errors.TypeConfig, "catalog entry with empty key")
	}
	if e.Category == "" {
		return errors.Newf(errors.TypeConfig, "%s: catalog entry without category", e.Key)
	}
	if !e.BaseRate.IsPositive() {
		return errors.Newf(errors.TypeConfig, "%s: base rate must be positive, got %s", e.Key, e.BaseRate)
	}
	return nil
}
