// Package catalog - HCL loader tests
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"logirate/internal/errors"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing catalog file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalogFile(t, `
rate "ambient-general" {
  category          = "ambient"
  base_rate         = "25.00"
  temperature_range = "15C a 30C"
  legislation       = ["RDC ANVISA 216/2004"]
  requirements      = ["Controle de pragas"]
}

rate "frozen-deep" {
  category  = "frozen"
  base_rate = "62.00"
}
`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := table.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Key != "ambient-general" || entries[1].Key != "frozen-deep" {
		t.Errorf("declaration order not preserved: %s, %s", entries[0].Key, entries[1].Key)
	}

	entry, err := table.Lookup("ambient-general")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := entry.BaseRate.StringFixed(2); got != "25.00" {
		t.Errorf("base rate = %s, want 25.00", got)
	}
	if entry.Category != CategoryAmbient {
		t.Errorf("category = %s, want ambient", entry.Category)
	}
	if len(entry.LegislationRefs) != 1 || entry.LegislationRefs[0] != "RDC ANVISA 216/2004" {
		t.Errorf("legislation refs = %v", entry.LegislationRefs)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid rate", `
rate "a" {
  category  = "ambient"
  base_rate = "not-a-number"
}
`},
		{"zero rate", `
rate "a" {
  category  = "ambient"
  base_rate = "0"
}
`},
		{"duplicate key", `
rate "a" {
  category  = "ambient"
  base_rate = "10"
}
rate "a" {
  category  = "frozen"
  base_rate = "20"
}
`},
		{"not hcl at all", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalogFile(t, tt.content)
			if _, err := Load(path); !errors.IsType(err, errors.TypeConfig) {
				t.Fatalf("expected CONFIG error, got %v", err)
			}
		})
	}
}
