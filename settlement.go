package pokerbank

import (
	"slices"

	"github.com/shopspring/decimal"
)

// epsilon is the tolerance around zero: balances within it owe nothing and
// are owed nothing.
var epsilon = decimal.New(1, -9)

// Transfer is a single directed payment: From must pay Amount to To.
type Transfer struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// Settle turns net balances into a list of transfers that zeroes them out.
//
// Because Go maps have no defined iteration order, the caller supplies the
// iteration order explicitly: 'order' is usually the session roster. Names in
// 'order' missing from 'balances' count as zero; names in 'balances' missing
// from 'order' are ignored.
//
// The algorithm is a greedy largest-pair matching: debtors sorted by most
// negative balance first, creditors by most positive first (stable sort, so
// ties keep their order in 'order'), then two cursors repeatedly pair the
// current largest debtor with the current largest creditor for
// min(debt, credit) rounded to two decimal places. The exact pairing is part
// of the contract: identical input always produces the identical transfer
// list, in the same order. It does not guarantee the theoretical minimum
// transfer count, but never emits more than debtors+creditors-1 transfers.
//
// An unbalanced input is not an error: the resulting transfers simply fail to
// fully zero out, and detecting the imbalance is the caller's concern.
func Settle(order []string, balances map[string]decimal.Decimal) []Transfer {
	type account struct {
		name string
		net  decimal.Decimal
	}

	var debtors, creditors []account
	for _, name := range order {
		net, ok := balances[name]
		if !ok {
			continue
		}
		switch {
		case net.LessThan(epsilon.Neg()):
			debtors = append(debtors, account{name, net})
		case net.GreaterThan(epsilon):
			creditors = append(creditors, account{name, net})
		}
	}

	slices.SortStableFunc(debtors, func(a, b account) int { return a.net.Cmp(b.net) })
	slices.SortStableFunc(creditors, func(a, b account) int { return b.net.Cmp(a.net) })

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		pay := decimal.Min(debtor.net.Neg(), creditor.net).Round(2)
		if !pay.IsPositive() {
			// A residual below half a cent rounds to nothing payable.
			// Stop rather than spin on an amount no one can transfer.
			break
		}
		transfers = append(transfers, Transfer{From: debtor.name, To: creditor.name, Amount: pay})
		debtor.net = debtor.net.Add(pay)
		creditor.net = creditor.net.Sub(pay)

		// Both cursors may advance in the same iteration, when debt and
		// credit cancel out exactly.
		if debtor.net.GreaterThanOrEqual(epsilon.Neg()) {
			i++
		}
		if creditor.net.LessThanOrEqual(epsilon) {
			j++
		}
	}
	return transfers
}
