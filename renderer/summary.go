package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/pokerbank"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the session header: roster, totals and whether the
// table adds up.
func SummaryMarkdown(s *pokerbank.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Session %s", s.Name()))

	ledger := s.Ledger()
	cur := s.Currency()
	doc.PlainText(fmt.Sprintf("Total buy-ins: %s. Total cash-outs: %s.",
		money(ledger.TotalBuyIn(), cur), money(ledger.TotalCashOut(), cur)))

	if unmatched := ledger.Unmatched(); !unmatched.IsZero() {
		doc.PlainText(fmt.Sprintf("⚠️ Totals don't match, difference: %s. Check the entries before settling.",
			signedMoney(unmatched, cur)))
	} else {
		doc.PlainText("Totals match ✔")
	}

	doc.H2("Players")
	table := md.TableSet{
		Header: []string{"Player", "Active", "Total Buy-in", "Cash-out"},
		Rows:   [][]string{},
	}
	for p := range s.Players() {
		active := "yes"
		if !p.Active {
			active = "no"
		}
		table.Rows = append(table.Rows, []string{
			p.Name,
			active,
			money(ledger.BuyIn(p.Name), cur),
			money(ledger.CashOut(p.Name), cur),
		})
	}
	doc.Table(table)

	return doc.String()
}
