// Package cmd implements the CLI application to run a poker session bank.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pokerbank"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "session")
	c.Register(&addCmd{}, "session")
	c.Register(&gamesCmd{}, "session")

	c.Register(&buyinCmd{}, "entries")
	c.Register(&cashoutCmd{}, "entries")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&balancesCmd{}, "reports")
	c.Register(&settleCmd{}, "reports")

	c.Register(&exportCmd{}, "sharing")
	c.Register(&inspectCmd{}, "sharing")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var saveDir = flag.String("save-dir", "pokerbank_saves", "Folder holding the game save files")
var gameFile = flag.String("game", "", "Game save file to operate on. Defaults to the only save if one exists.")

// gamePath resolves the save file the commands operate on.
func gamePath() (string, error) {
	if *gameFile != "" {
		name := *gameFile
		if !strings.HasSuffix(name, ".json") {
			name += ".json"
		}
		return filepath.Join(*saveDir, name), nil
	}

	saves, err := listSaves()
	if err != nil {
		return "", err
	}
	switch len(saves) {
	case 0:
		return "", fmt.Errorf("no saves in %q, start one with 'new'", *saveDir)
	case 1:
		return filepath.Join(*saveDir, saves[0]), nil
	default:
		return "", fmt.Errorf("several saves in %q, pick one with -game", *saveDir)
	}
}

// listSaves returns the save file names found in the save dir, sorted.
func listSaves() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(*saveDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("cannot list saves: %w", err)
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = filepath.Base(m)
	}
	return names, nil
}

// decodeSession loads the current game's session.
func decodeSession() (*pokerbank.Session, error) {
	path, err := gamePath()
	if err != nil {
		return nil, err
	}
	return pokerbank.LoadSession(path)
}

// encodeSession saves the current game's session back to its file.
func encodeSession(s *pokerbank.Session) error {
	path, err := gamePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*saveDir, 0755); err != nil {
		return fmt.Errorf("cannot create save dir: %w", err)
	}
	return pokerbank.SaveSession(path, s)
}

// safeFilename turns a game name into a portable file name.
func safeFilename(name string) string {
	var b strings.Builder
	for _, ch := range strings.TrimSpace(name) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// parseAmount parses a monetary amount from the command line. decimal parsing
// rejects non-finite values, so nothing weird can reach the ledger.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
