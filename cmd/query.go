package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string { return "query" }
func (*queryCmd) Synopsis() string {
	return "evaluates a JSONPath expression over a QIF file"
}
func (*queryCmd) Usage() string {
	return `qifc query -p <jsonpath> <file.qif>

  Exports the file as a JSON document (accounts, categories, classes,
  securities) and prints the part selected by the JSONPath expression.

Usage Examples:
# All account names.
$ qifc query -p '$.accounts[*].name' export.qif

# All payees of every transaction.
$ qifc query -p '$..payee' export.qif

`
}

func (p *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.path, "p", "$", "JSONPath expression to evaluate.")
}

func (p *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	data, err := json.Marshal(q)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	result, err := jsonpath.Get(p.path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", p.path, err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
