package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites a QIF file in a canonical form"
}
func (*fmtCmd) Usage() string {
	return `qifc fmt [-o <out.qif>] <file.qif>

  Parses the file and writes it back in a canonical form: categories
  first, then classes, securities and accounts with their transactions,
  all in a fixed tag order. Records that cannot be decoded are skipped
  and reported on stderr (use -strict to fail instead).

Usage Examples:
# Print the canonical form on stdout.
$ qifc fmt export.qif

# Rewrite in place.
$ qifc fmt -o export.qif export.qif

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Write the result to this file instead of stdout.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.outputFile == "" {
		fmt.Print(qif.EncodeString(q))
		return subcommands.ExitSuccess
	}
	if err := qif.WriteFile(p.outputFile, q); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", p.outputFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
