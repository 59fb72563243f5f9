package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pokerbank"
	"github.com/google/subcommands"
)

type inspectCmd struct {
	path string
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "query a save file with a jsonpath expression" }
func (*inspectCmd) Usage() string {
	return `pkb inspect -p <jsonpath> [<file>]

  Evaluates a jsonpath expression against a save file (the current game's by
  default) and prints the result as JSON.

Usage Examples:
# Who bought in, and for how much?
$ pkb inspect -p $.ledger.buyins

`
}

func (p *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.path, "p", "$", "jsonpath expression to evaluate")
}

func (p *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file := ""
	if f.NArg() > 0 {
		file = f.Arg(0)
	} else {
		var err error
		if file, err = gamePath(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	r, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", file, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	jval, err := pokerbank.Lookup(r, p.path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
