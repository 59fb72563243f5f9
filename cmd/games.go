package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type gamesCmd struct{}

func (*gamesCmd) Name() string     { return "games" }
func (*gamesCmd) Synopsis() string { return "list the game save files" }
func (*gamesCmd) Usage() string {
	return `pkb games

  Lists the saves found in the save folder. Any of them can be selected with
  the global -game flag.
`
}

func (*gamesCmd) SetFlags(*flag.FlagSet) {}

func (p *gamesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	saves, err := listSaves()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(saves) == 0 {
		fmt.Println("No saves yet, start one with 'new'.")
		return subcommands.ExitSuccess
	}
	for _, save := range saves {
		fmt.Println(strings.TrimSuffix(save, ".json"))
	}
	return subcommands.ExitSuccess
}
