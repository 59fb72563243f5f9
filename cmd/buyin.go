package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pokerbank"
	"github.com/google/subcommands"
)

type buyinCmd struct {
	player string
	amount string
}

func (*buyinCmd) Name() string     { return "buyin" }
func (*buyinCmd) Synopsis() string { return "record a buy-in or rebuy for a player" }
func (*buyinCmd) Usage() string {
	return `pkb buyin -p <player> [-a <amount>]

  Adds a buy-in to the player's cumulative total. Without -a, the game's
  default buy-in is used. Buy-ins only ever grow; there is no undo.
`
}

func (p *buyinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.player, "p", "", "Player name")
	f.StringVar(&p.amount, "a", "", "Amount (defaults to the game's default buy-in)")
}

func (p *buyinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.player == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <player> is required")
		return subcommands.ExitUsageError
	}

	s, err := decodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	amount := s.DefaultBuyIn()
	if p.amount != "" {
		if amount, err = parseAmount(p.amount); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	if err := s.RecordBuyIn(p.player, amount); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := encodeSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s buy-in for %s, total %s\n",
		pokerbank.M(amount, s.Currency()),
		p.player,
		pokerbank.M(s.Ledger().BuyIn(p.player), s.Currency()))
	return subcommands.ExitSuccess
}
