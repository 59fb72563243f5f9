package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/pokerbank"
	md "github.com/nao1215/markdown"
)

// TransfersMarkdown renders the settlement: who owes whom how much.
func TransfersMarkdown(s *pokerbank.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Settlement")

	if !s.Balanced() {
		doc.PlainText(fmt.Sprintf("⚠️ Totals don't match (difference %s): this settlement cannot fully zero out.",
			signedMoney(s.Ledger().Unmatched(), s.Currency())))
	}

	transfers := s.Settlement()
	if len(transfers) == 0 {
		doc.PlainText("No transfers needed. Everyone is square.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"From (debtor)", "To (creditor)", "Amount"},
		Rows:   [][]string{},
	}
	for _, t := range transfers {
		table.Rows = append(table.Rows, []string{t.From, t.To, money(t.Amount, s.Currency())})
	}
	doc.Table(table)

	return doc.String()
}
