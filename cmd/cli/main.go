package main

import (
	"fmt"
	"os"

	"github.com/folio-tools/folio-api/pkg/runtime/terminal"
	"github.com/folio-tools/folio-api/pkg/services/receipt"
	"github.com/folio-tools/folio-api/pkg/services/screentime"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Generator: receipt.NewGenerator(),
		Parser:    screentime.NewParser(),
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
