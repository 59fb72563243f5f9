package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/pokerbank"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	out    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the game outcome as JSON or CSV" }
func (*exportCmd) Usage() string {
	return `pkb export [-format json|csv] [-o <dir>]

  With -format json (the default), writes a single snapshot document with
  settings, flows, balances, transfers and totals to stdout, or to
  <dir>/<game>_snapshot.json with -o.

  With -format csv, writes buyins.csv, cashouts.csv and transfers.csv into
  the -o directory (the current one by default).
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "format", "json", "Export format (json, csv)")
	f.StringVar(&p.out, "o", "", "Output directory")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := decodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch p.format {
	case "json":
		if p.out == "" {
			if err := pokerbank.ExportJSON(os.Stdout, s, time.Now()); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			return subcommands.ExitSuccess
		}
		path := filepath.Join(p.out, safeFilename(s.Name())+"_snapshot.json")
		if err := exportFile(path, func(f *os.File) error {
			return pokerbank.ExportJSON(f, s, time.Now())
		}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Exported snapshot to %s\n", path)
		return subcommands.ExitSuccess

	case "csv":
		dir := p.out
		if dir == "" {
			dir = "."
		}
		exports := []struct {
			file  string
			write func(*os.File) error
		}{
			{"buyins.csv", func(f *os.File) error { return pokerbank.ExportBuyInsCSV(f, s) }},
			{"cashouts.csv", func(f *os.File) error { return pokerbank.ExportCashOutsCSV(f, s) }},
			{"transfers.csv", func(f *os.File) error { return pokerbank.ExportTransfersCSV(f, s) }},
		}
		for _, e := range exports {
			path := filepath.Join(dir, e.file)
			if err := exportFile(path, e.write); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Exported %s\n", path)
		}
		return subcommands.ExitSuccess

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", p.format)
		return subcommands.ExitUsageError
	}
}

func exportFile(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create export file: %w", err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
