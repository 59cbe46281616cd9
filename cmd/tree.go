package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type treeCmd struct{}

func (*treeCmd) Name() string { return "tree" }
func (*treeCmd) Synopsis() string {
	return "renders the category hierarchies of a QIF file"
}
func (*treeCmd) Usage() string {
	return `qifc tree <file.qif> [<category>]

  Renders the category forest, one tree per root. With a category name
  (a colon hierarchy works too), renders only that subtree.

Usage Examples:
$ qifc tree export.qif
$ qifc tree export.qif Bills:Utilities

`
}

func (*treeCmd) SetFlags(f *flag.FlagSet) {}

func (c *treeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if f.NArg() > 1 {
		cat := q.Category(f.Arg(1))
		if cat == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", f.Arg(1))
			return subcommands.ExitFailure
		}
		fmt.Println(cat.RenderTree())
		return subcommands.ExitSuccess
	}
	for _, root := range q.Categories() {
		fmt.Println(root.RenderTree())
		fmt.Println()
	}
	return subcommands.ExitSuccess
}
