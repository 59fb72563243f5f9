package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pokerbank/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the game's players and totals" }
func (*summaryCmd) Usage() string {
	return `pkb summary

  Displays the roster with each player's buy-in and cash-out totals, and
  whether the table adds up.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := decodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
