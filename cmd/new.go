package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/pokerbank"
	"github.com/google/subcommands"
)

type newCmd struct {
	currency string
	buyin    string
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "start a new game" }
func (*newCmd) Usage() string {
	return `pkb new [-c <currency>] [-b <amount>] [<game name>]

  Creates a new game save file in the save folder. The game name defaults to
  "Home Game <today>".

Usage Examples:
# Start the Friday game with a 10 EUR default buy-in.
$ pkb new -c EUR -b 10 "Friday Game"

`
}

func (p *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "c", pokerbank.DefaultCurrency, "ISO 4217 currency code for the game")
	f.StringVar(&p.buyin, "b", "10", "Default buy-in amount")
}

func (p *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		name = fmt.Sprintf("Home Game %s", time.Now().Format("2006-01-02"))
	}

	buyin, err := parseAmount(p.buyin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s := pokerbank.NewSession(name, p.currency, buyin)

	if err := os.MkdirAll(*saveDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating save dir: %v\n", err)
		return subcommands.ExitFailure
	}
	path := filepath.Join(*saveDir, safeFilename(name)+".json")
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: save %q already exists\n", path)
		return subcommands.ExitFailure
	}
	if err := pokerbank.SaveSession(path, s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Started new game %q in %s\n", name, path)
	return subcommands.ExitSuccess
}
