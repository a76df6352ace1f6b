// Package catalog - HCL catalog loader
// Lets the rate table live as data next to the deployment instead of in
// code. File format:
//
//	rate "ambient-general" {
//	  category          = "ambient"
//	  base_rate         = "25.00"
//	  temperature_range = "15°C a 30°C"
//	  legislation       = ["RDC ANVISA 216/2004"]
//	  requirements      = ["Controle de pragas"]
//	}
package catalog

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"logirate/internal/errors"
)

type catalogFile struct {
	Rates []rateBlock `hcl:"rate,block"`
}

type rateBlock struct {
	Key              string   `hcl:"key,label"`
	Category         string   `hcl:"category"`
	BaseRate         string   `hcl:"base_rate"`
	TemperatureRange string   `hcl:"temperature_range,optional"`
	LegislationRefs  []string `hcl:"legislation,optional"`
	Requirements     []string `hcl:"requirements,optional"`
}

// Load builds a table from an HCL catalog file. The same invariants as
// NewTable apply; a file that violates them fails with a CONFIG error.
func Load(path string) (*Table, error) {
	entries, err := LoadEntries(path)
	if err != nil {
		return nil, err
	}
	return NewTable(entries)
}

// LoadEntries parses an HCL catalog file into entries in declaration order.
func LoadEntries(path string) ([]*Entry, error) {
	var file catalogFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("parsing catalog file", err)
	}

	entries := make([]*Entry, 0, len(file.Rates))
	for _, block := range file.Rates {
		baseRate, err := decimal.NewFromString(block.BaseRate)
		if err != nil {
			return nil, errors.Newf(errors.TypeConfig, "%s: invalid base_rate %q", block.Key, block.BaseRate)
		}
		entries = append(entries, &Entry{
			Key:              block.Key,
			Category:         Category(block.Category),
			BaseRate:         baseRate,
			TemperatureRange: block.TemperatureRange,
			LegislationRefs:  block.LegislationRefs,
			Requirements:     block.Requirements,
		})
	}
	return entries, nil
}
