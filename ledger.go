package pokerbank

import (
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger tracks money flows per participant in a single session.
//
// It holds two independent mappings from participant name to an accumulated
// amount: buy-ins only ever grow, while cash-outs can be replaced outright to
// correct a final total. Amounts keep their full precision; rounding to two
// decimal places happens exactly once, when balances are derived.
//
// The Ledger accepts any name as an opaque key and does not validate the sign
// of amounts: that is the session controller's responsibility.
type Ledger struct {
	buyins   map[string]decimal.Decimal
	cashouts map[string]decimal.Decimal
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		buyins:   make(map[string]decimal.Decimal),
		cashouts: make(map[string]decimal.Decimal),
	}
}

// RecordBuyIn adds a buy-in (or rebuy) amount to the participant's cumulative
// total, creating the entry at zero first if absent.
func (l *Ledger) RecordBuyIn(name string, amount decimal.Decimal) {
	l.buyins[name] = l.buyins[name].Add(amount)
}

// SetCashOut replaces the participant's cash-out with an absolute amount.
// It is the way to correct a final total downward.
func (l *Ledger) SetCashOut(name string, amount decimal.Decimal) {
	l.cashouts[name] = amount
}

// AddCashOut increments the participant's cash-out total, creating the entry
// at zero first if absent. It supports payouts entered over multiple steps.
func (l *Ledger) AddCashOut(name string, amount decimal.Decimal) {
	l.cashouts[name] = l.cashouts[name].Add(amount)
}

// BuyIn returns the participant's cumulative buy-in, zero if none recorded.
func (l *Ledger) BuyIn(name string) decimal.Decimal { return l.buyins[name] }

// CashOut returns the participant's cash-out total, zero if none recorded.
func (l *Ledger) CashOut(name string) decimal.Decimal { return l.cashouts[name] }

// TotalBuyIn sums all recorded buy-ins.
func (l *Ledger) TotalBuyIn() decimal.Decimal { return sum(l.buyins) }

// TotalCashOut sums all recorded cash-outs.
func (l *Ledger) TotalCashOut() decimal.Decimal { return sum(l.cashouts) }

// Unmatched returns total cash-outs minus total buy-ins. A non-zero value
// means the table does not add up and the settlement cannot fully zero out.
func (l *Ledger) Unmatched() decimal.Decimal {
	return l.TotalCashOut().Sub(l.TotalBuyIn()).Round(2)
}

func sum(m map[string]decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

// Balances computes the net balance (cash-out minus buy-in, rounded to two
// decimal places) for every name in the roster, and only those names.
// Participants with no recorded activity have a zero balance; entries present
// in the ledger but absent from the roster are not reported.
func (l *Ledger) Balances(roster []string) map[string]decimal.Decimal {
	bal := make(map[string]decimal.Decimal, len(roster))
	for _, name := range roster {
		bal[name] = l.cashouts[name].Sub(l.buyins[name]).Round(2)
	}
	return bal
}

// LedgerState is the serializable shape of a ledger, embedded as the "ledger"
// block of a session snapshot.
type LedgerState struct {
	BuyIns   map[string]decimal.Decimal `json:"buyins"`
	CashOuts map[string]decimal.Decimal `json:"cashouts"`
}

// State returns a copy of the ledger's internal mappings for serialization.
func (l *Ledger) State() LedgerState {
	return LedgerState{
		BuyIns:   maps.Clone(l.buyins),
		CashOuts: maps.Clone(l.cashouts),
	}
}

// RestoreLedger rebuilds a ledger from a decoded snapshot. Nil maps in the
// state are treated as empty.
func RestoreLedger(state LedgerState) *Ledger {
	l := NewLedger()
	maps.Copy(l.buyins, state.BuyIns)
	maps.Copy(l.cashouts, state.CashOuts)
	return l
}

// AllBuyIns iterates over recorded buy-ins in alphabetical name order.
func (l *Ledger) AllBuyIns() iter.Seq2[string, decimal.Decimal] {
	return sorted(l.buyins)
}

// AllCashOuts iterates over recorded cash-outs in alphabetical name order.
func (l *Ledger) AllCashOuts() iter.Seq2[string, decimal.Decimal] {
	return sorted(l.cashouts)
}

func sorted(m map[string]decimal.Decimal) iter.Seq2[string, decimal.Decimal] {
	return func(yield func(string, decimal.Decimal) bool) {
		names := slices.Collect(maps.Keys(m))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name, m[name]) {
				return
			}
		}
	}
}
