package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pokerbank/renderer"
	"github.com/google/subcommands"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display each player's net balance" }
func (*balancesCmd) Usage() string {
	return `pkb balances

  Displays the net balance (cash-out minus buy-in) of every player on the
  roster, best result first.
`
}

func (*balancesCmd) SetFlags(*flag.FlagSet) {}

func (p *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := decodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BalancesMarkdown(s))
	return subcommands.ExitSuccess
}
