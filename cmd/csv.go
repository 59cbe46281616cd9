package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif"
	"github.com/google/subcommands"
)

type csvCmd struct {
	dataType string
}

func (*csvCmd) Name() string { return "csv" }
func (*csvCmd) Synopsis() string {
	return "exports one entity kind of a QIF file as CSV"
}
func (*csvCmd) Usage() string {
	return `qifc csv [-t <kind>] <file.qif>

  Writes a flat CSV view of the file on stdout. The kind is one of
  transactions, investments, accounts, categories, classes, securities.

Usage Examples:
# All bank-style transactions, one row each.
$ qifc csv export.qif

# The declared securities.
$ qifc csv -t securities export.qif

`
}

func (p *csvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.dataType, "t", "transactions", "Entity kind to export.")
}

func (p *csvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := qif.ParseDataType(p.dataType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	q, err := load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := qif.ExportCSV(os.Stdout, q, kind); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
