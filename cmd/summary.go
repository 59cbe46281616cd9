package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	currency string
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "prints an overview of a QIF file"
}
func (*summaryCmd) Usage() string {
	return `qifc summary [-c <currency>] <file.qif>

  Prints a markdown overview: one table row per account with money
  totals, the category trees, the classes and the securities. QIF files
  carry no currency, so -c selects the one used for formatting.

Usage Examples:
$ qifc summary export.qif
$ qifc summary -c EUR export.qif

`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "c", "USD", "ISO 4217 currency used to format money totals.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md, err := renderer.SummaryMarkdown(q, p.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering summary: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
