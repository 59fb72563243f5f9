package pokerbank

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the export formats.
// Exports are one-way: they are meant for sharing the outcome of a session,
// not for loading it back (that is the snapshot's job).

// ExportJSON writes the full outcome of a session as a single indented JSON
// document: settings, roster, raw flows, derived balances, transfers and
// totals. Field order is canonical.
func ExportJSON(w io.Writer, s *Session, createdAt time.Time) error {
	bals := s.Balances()
	transfers := Settle(s.Roster(), bals)
	if transfers == nil {
		transfers = []Transfer{} // an empty settlement exports as [], not null
	}

	var doc jsonObjectWriter
	doc.Append("game_name", s.Name())
	doc.Append("currency", s.Currency())
	doc.Append("created_at", createdAt.Format(time.RFC3339))
	doc.Append("players", s.Roster())
	doc.Append("buyins", s.Ledger().State().BuyIns)
	doc.Append("cashouts", s.Ledger().State().CashOuts)
	doc.Append("balances", bals)
	doc.Append("transfers", transfers)
	doc.Append("total_buyin", s.Ledger().TotalBuyIn())
	doc.Append("total_cashout", s.Ledger().TotalCashOut())

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal session export: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return fmt.Errorf("cannot indent session export: %w", err)
	}
	indented.WriteByte('\n')
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("cannot write session export: %w", err)
	}
	return nil
}

// ExportBuyInsCSV writes every player's cumulative buy-in, one row per
// player, alphabetically.
func ExportBuyInsCSV(w io.Writer, s *Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Player", "Total_Buyin"}); err != nil {
		return err
	}
	for name, amount := range s.Ledger().AllBuyIns() {
		if err := cw.Write([]string{name, amount.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCashOutsCSV writes every player's cash-out total, one row per player,
// alphabetically.
func ExportCashOutsCSV(w io.Writer, s *Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Player", "Cashout"}); err != nil {
		return err
	}
	for name, amount := range s.Ledger().AllCashOuts() {
		if err := cw.Write([]string{name, amount.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportTransfersCSV writes the settlement transfers in settlement order.
func ExportTransfersCSV(w io.Writer, s *Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"From", "To", "Amount"}); err != nil {
		return err
	}
	for _, t := range s.Settlement() {
		if err := cw.Write([]string{t.From, t.To, t.Amount.StringFixed(2)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Lookup evaluates a jsonpath expression against a JSON document, typically a
// session snapshot or export. A single-element result list is unwrapped to
// its element.
func Lookup(r io.Reader, path string) (any, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of one
	// answer or a single answer, keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}
