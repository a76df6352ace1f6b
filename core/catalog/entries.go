// Package catalog - Built-in rate table
// Seed data for the standard storage segments. Rates are BRL per m² per
// 30-day period, matching the commercial tables used by the proposal desk.
package catalog

import "github.com/shopspring/decimal"

// Default returns a table seeded with the built-in rate entries.
func Default() *Table {
	t, err := NewTable(DefaultEntries())
	if err != nil {
		// Built-in data violating its own invariants is a programming error
		panic(err)
	}
	return t
}

// DefaultEntries returns the built-in catalog in declaration order.
func DefaultEntries() []*Entry {
	return []*Entry{
		{
			Key:              "ambient-general",
			Category:         CategoryAmbient,
			BaseRate:         rate("25.00"),
			TemperatureRange: "15°C a 30°C",
			Requirements:     []string{"Controle de pragas", "Empilhamento máximo conforme fabricante"},
		},
		{
			Key:              "ambient-fragile",
			Category:         CategoryAmbient,
			BaseRate:         rate("32.00"),
			TemperatureRange: "15°C a 30°C",
			Requirements:     []string{"Manuseio individual", "Área segregada de baixa movimentação"},
		},
		{
			Key:              "refrigerated-perishable",
			Category:         CategoryRefrigerated,
			BaseRate:         rate("48.00"),
			TemperatureRange: "0°C a 8°C",
			LegislationRefs:  []string{"RDC ANVISA 216/2004"},
			Requirements:     []string{"Registro contínuo de temperatura", "Plano de contingência de frio"},
		},
		{
			Key:              "frozen-deep",
			Category:         CategoryFrozen,
			BaseRate:         rate("62.00"),
			TemperatureRange: "-25°C a -18°C",
			LegislationRefs:  []string{"Portaria MAPA 368/1997"},
			Requirements:     []string{"Câmara dedicada", "Monitoramento 24h com alarme"},
		},
		{
			Key:              "pharma-controlled",
			Category:         CategoryPharmaceutical,
			BaseRate:         rate("85.00"),
			TemperatureRange: "2°C a 8°C",
			LegislationRefs:  []string{"RDC ANVISA 430/2020", "RDC ANVISA 653/2022"},
			Requirements:     []string{"AFE vigente", "Qualificação térmica da câmara", "Rastreabilidade por lote"},
		},
		{
			Key:              "hazmat-flammable",
			Category:         CategoryHazardous,
			BaseRate:         rate("70.00"),
			TemperatureRange: "Ambiente ventilado",
			LegislationRefs:  []string{"NR-20", "ABNT NBR 17505"},
			Requirements:     []string{"Licença do corpo de bombeiros", "Bacia de contenção", "FISPQ disponível"},
		},
		{
			Key:              "agri-grains",
			Category:         CategoryAgricultural,
			BaseRate:         rate("18.00"),
			TemperatureRange: "Ambiente seco",
			LegislationRefs:  []string{"IN MAPA 29/2011"},
			Requirements:     []string{"Controle de umidade", "Certificação de unidade armazenadora"},
		},
		{
			Key:              "special-oversized",
			Category:         CategorySpecial,
			BaseRate:         rate("40.00"),
			Requirements:     []string{"Equipamento de içamento dedicado", "Projeto de movimentação aprovado"},
		},
	}
}

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
