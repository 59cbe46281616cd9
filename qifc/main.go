// Command qifc reads, converts and rewrites Quicken Interchange Format
// files.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/qif/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately in
// a normal run.
func completion() {
	qifFiles := predict.Files("*.qif")
	globalFlags := map[string]complete.Predictor{
		"day-first": predict.Nothing,
		"strict":    predict.Nothing,
	}
	c := &complete.Command{
		Flags: globalFlags,
		Sub: map[string]*complete.Command{
			"fmt": {
				Flags: map[string]complete.Predictor{"o": qifFiles},
				Args:  qifFiles,
			},
			"csv": {
				Flags: map[string]complete.Predictor{
					"t": predict.Set{"transactions", "investments", "accounts", "categories", "classes", "securities"},
				},
				Args: qifFiles,
			},
			"tree":    {Args: qifFiles},
			"summary": {Flags: map[string]complete.Predictor{"c": predict.Nothing}, Args: qifFiles},
			"query":   {Flags: map[string]complete.Predictor{"p": predict.Nothing}, Args: qifFiles},
			"topic":   {Args: predict.Set{"readme", "format", "dates", "splits", "categories", "*"}},
			"assist":  {Args: qifFiles},
			"import-ofx": {
				Flags: map[string]complete.Predictor{"o": qifFiles},
				Args:  predict.Files("*.ofx"),
			},
		},
	}
	c.Complete("qifc")
}
