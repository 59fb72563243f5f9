package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pokerbank/renderer"
	"github.com/google/subcommands"
)

type settleCmd struct{}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "compute who owes whom how much" }
func (*settleCmd) Usage() string {
	return `pkb settle

  Computes the transfers that settle all balances. When totals don't match,
  the settlement is still shown with a warning: it cannot fully zero out.
`
}

func (*settleCmd) SetFlags(*flag.FlagSet) {}

func (p *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := decodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransfersMarkdown(s))
	return subcommands.ExitSuccess
}
