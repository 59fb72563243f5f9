package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add players to the game" }
func (*addCmd) Usage() string {
	return `pkb add <name>...

  Adds one or more players to the roster. Names are trimmed and must be
  unique within the game.
`
}

func (*addCmd) SetFlags(*flag.FlagSet) {}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one player name is required")
		return subcommands.ExitUsageError
	}

	s, err := decodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, name := range f.Args() {
		if err := s.AddPlayer(name); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	if err := encodeSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %d player(s), roster is now %v\n", f.NArg(), s.Roster())
	return subcommands.ExitSuccess
}
