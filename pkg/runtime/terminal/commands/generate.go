package commands

import (
	"fmt"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/services/receipt"
	"github.com/spf13/cobra"
)

// ReceiptReporter renders a generated receipt to the terminal.
type ReceiptReporter interface {
	Handle(r *domain.Receipt) error
}

func NewGenerateCmd(gen *receipt.Generator, reporter ReceiptReporter) *cobra.Command {
	var period string
	var rosterPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a simulated screen time receipt",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePeriod(period)
			if err != nil {
				return err
			}

			g := gen
			if rosterPath != "" {
				roster, err := receipt.LoadRoster(rosterPath)
				if err != nil {
					return err
				}
				g = receipt.NewGenerator(receipt.WithRoster(roster))
			}

			r := g.Generate(p, nil)
			return reporter.Handle(&r)
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", string(domain.PeriodDaily), "report period (daily or weekly)")
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "path to a roster file overriding the built-in app roster")

	return cmd
}

func parsePeriod(raw string) (domain.Period, error) {
	switch domain.Period(raw) {
	case domain.PeriodDaily:
		return domain.PeriodDaily, nil
	case domain.PeriodWeekly:
		return domain.PeriodWeekly, nil
	default:
		return "", fmt.Errorf("unknown period %q, expected daily or weekly", raw)
	}
}
