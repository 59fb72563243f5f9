package renderer

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/etnz/pokerbank"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// BalancesMarkdown renders the net balance of every player, best result
// first, with the biggest winner and payer called out.
func BalancesMarkdown(s *pokerbank.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net per player")
	doc.PlainText("Positive means the player should receive money, negative means they should pay.")

	type row struct {
		name string
		net  decimal.Decimal
	}
	balances := s.Balances()
	rows := make([]row, 0, len(balances))
	for _, name := range s.Roster() {
		rows = append(rows, row{name, balances[name]})
	}
	slices.SortStableFunc(rows, func(a, b row) int { return b.net.Cmp(a.net) })

	cur := s.Currency()
	table := md.TableSet{
		Header: []string{"Player", "Net"},
		Rows:   [][]string{},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.name, signedMoney(r.net, cur)})
	}
	doc.Table(table)

	if len(rows) > 0 {
		winner, payer := rows[0], rows[len(rows)-1]
		if winner.net.IsPositive() {
			doc.PlainText(fmt.Sprintf("🏆 Biggest winner: %s (%s)", winner.name, signedMoney(winner.net, cur)))
		}
		if payer.net.IsNegative() {
			doc.PlainText(fmt.Sprintf("💸 Biggest payer: %s (%s)", payer.name, signedMoney(payer.net, cur)))
		}
	}

	return doc.String()
}
