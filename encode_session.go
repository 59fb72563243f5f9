package pokerbank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// snapshotVersion is bumped when the save format changes incompatibly.
const snapshotVersion = 1

// This file handles the session snapshot format: a single human-readable JSON
// document with a meta block, a settings block, a players block and the
// ledger's state. Field order is canonical so snapshots diff cleanly.

// jsettings is the settings block as read from or written to a snapshot.
type jsettings struct {
	GameName     string          `json:"game_name"`
	Currency     string          `json:"currency"`
	DefaultBuyIn decimal.Decimal `json:"default_buyin"`
}

// jsnapshot is the whole snapshot document for the json decoder.
type jsnapshot struct {
	Meta struct {
		SavedAt    string `json:"saved_at"`
		AppVersion int    `json:"app_version"`
	} `json:"meta"`
	Settings jsettings         `json:"settings"`
	Players  map[string]Player `json:"players"`
	Ledger   LedgerState       `json:"ledger"`
}

// EncodeSession writes the session as an indented JSON snapshot with a
// canonical field order. 'savedAt' is recorded in the meta block.
func EncodeSession(w io.Writer, s *Session, savedAt time.Time) error {
	var meta jsonObjectWriter
	meta.Append("saved_at", savedAt.Format(time.RFC3339))
	meta.Append("app_version", snapshotVersion)

	players := make(map[string]Player, len(s.players))
	for p := range s.Players() {
		players[p.Name] = p
	}

	var doc jsonObjectWriter
	doc.Append("meta", &meta)
	doc.Append("settings", jsettings{
		GameName:     s.name,
		Currency:     s.currency,
		DefaultBuyIn: s.defaultBuyIn,
	})
	doc.Append("players", players)
	doc.Append("ledger", s.ledger.State())

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal session snapshot: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return fmt.Errorf("cannot indent session snapshot: %w", err)
	}
	indented.WriteByte('\n')
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("cannot write session snapshot: %w", err)
	}
	return nil
}

// DecodeSession reads a session snapshot. Missing blocks decode to empty
// defaults, so a minimal document is a valid (empty) session. Roster order is
// not recorded in the snapshot's players block; it is restored
// alphabetically.
func DecodeSession(r io.Reader) (*Session, error) {
	var js jsnapshot
	if err := json.NewDecoder(r).Decode(&js); err != nil {
		return nil, fmt.Errorf("cannot parse session snapshot: %w", err)
	}

	s := NewSession(js.Settings.GameName, js.Settings.Currency, js.Settings.DefaultBuyIn)
	s.ledger = RestoreLedger(js.Ledger)

	for _, name := range slices.Sorted(maps.Keys(js.Players)) {
		p := js.Players[name]
		if p.Name == "" {
			p.Name = name
		}
		s.players = append(s.players, p)
	}
	return s, nil
}

// SaveSession writes the session snapshot to a file.
func SaveSession(path string, s *Session) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create session file: %w", err)
	}
	defer f.Close()
	if err := EncodeSession(f, s, time.Now()); err != nil {
		return err
	}
	return f.Close()
}

// LoadSession reads a session snapshot from a file.
func LoadSession(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open session file: %w", err)
	}
	defer f.Close()
	return DecodeSession(f)
}
