// Package renderer turns session state into markdown reports, ready to be
// printed raw or rendered to the terminal.
package renderer

import (
	"github.com/etnz/pokerbank"
	"github.com/shopspring/decimal"
)

// money formats an amount in the session's currency.
func money(amount decimal.Decimal, currency string) string {
	return pokerbank.M(amount, currency).String()
}

// signedMoney formats an amount with an explicit sign, "-" for zero.
func signedMoney(amount decimal.Decimal, currency string) string {
	return pokerbank.M(amount, currency).SignedString()
}
