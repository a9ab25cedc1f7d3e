package terminal

import (
	"io"
	"os"

	"github.com/folio-tools/folio-api/pkg/runtime/terminal/commands"
	"github.com/folio-tools/folio-api/pkg/runtime/terminal/export"
	"github.com/folio-tools/folio-api/pkg/services/receipt"
	"github.com/folio-tools/folio-api/pkg/services/screentime"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	generator *receipt.Generator
	parser    *screentime.Parser
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Generator *receipt.Generator
	Parser    *screentime.Parser
	Output    io.Writer
	Summary   bool
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var reporter commands.ReceiptReporter
	if opts.Summary {
		reporter = NewReporter(opts.Output)
	} else {
		reporter = export.NewReporter(opts.Output)
	}

	cli := &CLI{
		generator: opts.Generator,
		parser:    opts.Parser,
	}

	cli.rootCmd = cli.newRootCmd(reporter)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(reporter commands.ReceiptReporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Screen time receipt tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.generator, reporter))
	cmd.AddCommand(commands.NewParseCmd(cli.parser, cli.generator, reporter))

	return cmd
}
