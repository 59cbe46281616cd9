// Package cmd implements the CLI application to inspect and convert QIF
// files.
package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/etnz/qif"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fmtCmd{}, "codec")
	c.Register(&csvCmd{}, "codec")
	c.Register(&importOfxCmd{}, "codec")

	c.Register(&treeCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var dayFirst = flag.Bool("day-first", false, "read ambiguous dates like 02/07/2021 as day first (European)")
var strict = flag.Bool("strict", false, "fail on the first record that cannot be decoded instead of skipping it")

func parseConfig() qif.Config {
	return qif.Config{DayFirst: *dayFirst, Strict: *strict}
}

// load parses the .qif file named by the first positional argument and
// logs the collected warnings to stderr.
func load(f *flag.FlagSet) (*qif.Qif, error) {
	if f.NArg() < 1 {
		return nil, fmt.Errorf("missing <file.qif> argument")
	}
	q, err := qif.ParseFile(f.Arg(0), parseConfig())
	if err != nil {
		return nil, err
	}
	for _, w := range q.Warnings() {
		log.Printf("warning: %s", w)
	}
	return q, nil
}
