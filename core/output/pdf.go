// Package output - Proposal PDF rendering
package output

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"logirate/core/proposal"
)

// WriteProposalPDF renders a persisted proposal as an A4 commercial
// proposal document.
func WriteProposalPDF(w io.Writer, p *proposal.Proposal) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Proposta Comercial de Armazenagem", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Proposta %s", p.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Emitida em %s  |  Validade: %d dias",
		p.CreatedAt.Format("02/01/2006"), p.ValidityDays), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Contato", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(p.Contact.Name), "", 1, "L", false, 0, "")
	if p.Contact.Email != "" {
		pdf.CellFormat(0, 6, tr(p.Contact.Email), "", 1, "L", false, 0, "")
	}
	if p.Contact.Phone != "" {
		pdf.CellFormat(0, 6, tr(p.Contact.Phone), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	b := &p.Breakdown
	cur := b.Currency.String()

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Detalhamento (%d dias)", b.PeriodDays)), "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	line := func(label string, value string) {
		pdf.CellFormat(120, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, value, "", 1, "R", false, 0, "")
	}

	line("Armazenagem", money(cur, b.StorageValue))
	line("Posições pallet", money(cur, b.PalletValue))
	line("Movimentação", money(cur, b.MovementValue))
	line("Manuseio", money(cur, b.HandlingTotal))
	line("Seguro ad valorem", money(cur, b.InsuranceValue))
	pdf.Ln(2)
	line("Subtotal", money(cur, b.Subtotal))
	line("Taxa administrativa (10%)", money(cur, b.AdminFee))

	pdf.SetFont("Helvetica", "B", 11)
	line("TOTAL DO PERÍODO", money(cur, b.TotalValue))
	pdf.SetFont("Helvetica", "", 10)
	line("Equivalente mensal", money(cur, b.MonthlyEquivalent))
	line("Diária por m²", money(cur, b.DailyRate))

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, tr("Valores calculados sobre a tabela vigente na data de emissão. "+
		"Esta proposta é um orçamento pontual e não é recalculada após a emissão."), "", "L", false)

	return pdf.Output(w)
}
