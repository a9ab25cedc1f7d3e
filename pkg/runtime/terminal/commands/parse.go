package commands

import (
	"fmt"
	"os"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/services/receipt"
	"github.com/folio-tools/folio-api/pkg/services/screentime"
	"github.com/spf13/cobra"
)

func NewParseCmd(parser *screentime.Parser, gen *receipt.Generator, reporter ReceiptReporter) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Build a receipt from extracted Screen Time text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePeriod(period)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}

			categories := parser.Parse(cmd.Context(), string(raw))
			if categories == nil {
				return fmt.Errorf("no app usage found in %s", args[0])
			}

			r := gen.Generate(p, categories)
			return reporter.Handle(&r)
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", string(domain.PeriodDaily), "report period (daily or weekly)")

	return cmd
}
