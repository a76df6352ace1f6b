// Package cmd - proposal command
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logirate/core/output"
	"logirate/core/pricing"
	"logirate/core/proposal"
	"logirate/db"
	"logirate/internal/logging"
)

var (
	proposalFlags requestFlags

	contactName  string
	contactEmail string
	contactPhone string
	clientRef    string
	validityDays int
	actorID      string
	pdfPath      string
)

// proposalCmd represents the proposal command
var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Materialize a quote into a commercial proposal",
	Long: `Compute a quote and persist it as a commercial proposal. With a
configured database the proposal is saved to Postgres; otherwise it is held
in memory for the run, which is useful together with --pdf.

Examples:
  logirate proposal --area 100 --days 30 --rate-key ambient-general --name "ACME Ltda"
  logirate proposal --area 50 --days 15 --rate 55 --name "ACME" --pdf proposta.pdf`,
	RunE: runProposal,
}

func init() {
	proposalFlags.register(proposalCmd)
	proposalCmd.Flags().StringVar(&contactName, "name", "", "contact name")
	proposalCmd.Flags().StringVar(&contactEmail, "email", "", "contact email")
	proposalCmd.Flags().StringVar(&contactPhone, "phone", "", "contact phone")
	proposalCmd.Flags().StringVar(&clientRef, "client-ref", "", "registered client reference")
	proposalCmd.Flags().IntVar(&validityDays, "validity", 0, "proposal validity in days (default 15)")
	proposalCmd.Flags().StringVar(&actorID, "actor", "", "actor for usage metering")
	proposalCmd.Flags().StringVar(&pdfPath, "pdf", "", "write the proposal document to this path")
}

func runProposal(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req, err := proposalFlags.build()
	if err != nil {
		return err
	}

	table, err := loadCatalog()
	if err != nil {
		return err
	}

	breakdown, err := pricing.NewEngine(table).Compute(req)
	if err != nil {
		return err
	}

	var (
		store proposal.Store
		meter proposal.UsageMeter
	)
	if cfg.Database.URL != "" {
		pg, err := db.NewPostgres(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		store, meter = pg, pg
	} else {
		mem := db.NewMemory()
		store, meter = mem, mem
	}

	materializer := proposal.NewMaterializer(store, meter, logging.Logger)
	saved, err := materializer.Materialize(ctx, proposal.Input{
		Request:   req,
		Breakdown: *breakdown,
		Contact: proposal.ContactInfo{
			Name:  contactName,
			Email: contactEmail,
			Phone: contactPhone,
		},
		ClientRef:    clientRef,
		ValidityDays: validityDays,
		ActorID:      actorID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Proposal %s created (valid for %d days)\n", saved.ID, saved.ValidityDays)
	fmt.Printf("Total: %s %s\n", saved.Breakdown.Currency, saved.Breakdown.TotalValue.StringFixed(2))

	if pdfPath != "" {
		f, err := os.Create(pdfPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := output.WriteProposalPDF(f, saved); err != nil {
			return err
		}
		fmt.Printf("Document written to %s\n", pdfPath)
	}
	return nil
}
