package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pokerbank/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first. When invoked by the shell's completion
	// hook, Complete prints the candidates and exits.
	completion().Complete("pkb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	playerFlags := map[string]complete.Predictor{
		"p": predict.Nothing,
		"a": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"save-dir": predict.Dirs("*"),
			"game":     predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"new": {Flags: map[string]complete.Predictor{
				"c": predict.Set{"USD", "EUR", "GBP"},
				"b": predict.Nothing,
			}},
			"add":   {},
			"games": {},
			"buyin": {Flags: playerFlags},
			"cashout": {Flags: map[string]complete.Predictor{
				"p":   predict.Nothing,
				"a":   predict.Nothing,
				"set": predict.Nothing,
			}},
			"summary":  {},
			"balances": {},
			"settle":   {},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"json", "csv"},
				"o":      predict.Dirs("*"),
			}},
			"inspect": {
				Flags: map[string]complete.Predictor{"p": predict.Nothing},
				Args:  predict.Files("*.json"),
			},
			"topic":  {Args: predict.Set{"readme", "ledger", "settlement", "saves", "export"}},
			"assist": {},
		},
	}
}
