package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pokerbank"
	"github.com/google/subcommands"
)

type cashoutCmd struct {
	player string
	amount string
	set    bool
}

func (*cashoutCmd) Name() string     { return "cashout" }
func (*cashoutCmd) Synopsis() string { return "record a cash-out for a player" }
func (*cashoutCmd) Usage() string {
	return `pkb cashout -p <player> -a <amount> [-set]

  Adds to the player's cash-out total. With -set, replaces the total with the
  given amount instead, which is the way to correct a wrong entry.
`
}

func (p *cashoutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.player, "p", "", "Player name")
	f.StringVar(&p.amount, "a", "", "Amount")
	f.BoolVar(&p.set, "set", false, "Replace the total instead of adding to it")
}

func (p *cashoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.player == "" || p.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <player> and -a <amount> are required")
		return subcommands.ExitUsageError
	}

	amount, err := parseAmount(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, err := decodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.set {
		err = s.SetCashOut(p.player, amount)
	} else {
		err = s.AddCashOut(p.player, amount)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := encodeSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cash-out for %s is now %s\n",
		p.player,
		pokerbank.M(s.Ledger().CashOut(p.player), s.Currency()))
	return subcommands.ExitSuccess
}
