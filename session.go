package pokerbank

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Player is a participant of a session. Inactive players stay on the roster
// (their money flows still count) but are hidden from entry forms.
type Player struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Session owns the whole state of one game: its settings, its roster and its
// ledger. It is the single mutation point; the ledger is never shared.
//
// The session enforces what the core deliberately does not: names must be
// normalized, non-empty and unique, and amounts must be non-negative.
// A session is not safe for concurrent use.
type Session struct {
	name         string
	currency     string
	defaultBuyIn decimal.Decimal

	players []Player // roster, in insertion order
	ledger  *Ledger
}

// DefaultCurrency is used when a session or snapshot does not name one.
const DefaultCurrency = "USD"

// NewSession creates an empty session.
func NewSession(name, currency string, defaultBuyIn decimal.Decimal) *Session {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Session{
		name:         name,
		currency:     currency,
		defaultBuyIn: defaultBuyIn,
		ledger:       NewLedger(),
	}
}

// NormalizeName trims surrounding whitespace from a player name.
func NormalizeName(name string) string { return strings.TrimSpace(name) }

func (s *Session) Name() string                  { return s.name }
func (s *Session) Currency() string              { return s.currency }
func (s *Session) DefaultBuyIn() decimal.Decimal { return s.defaultBuyIn }
func (s *Session) Ledger() *Ledger               { return s.ledger }

// Rename changes the session's display name.
func (s *Session) Rename(name string) { s.name = name }

// AddPlayer adds a new player to the roster. The name is normalized first;
// empty or duplicate names are rejected.
func (s *Session) AddPlayer(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return fmt.Errorf("player name cannot be empty")
	}
	if s.hasPlayer(name) {
		return fmt.Errorf("player %q already exists", name)
	}
	s.players = append(s.players, Player{Name: name, Active: true})
	return nil
}

// SetActive marks a player active or inactive.
func (s *Session) SetActive(name string, active bool) error {
	for i := range s.players {
		if s.players[i].Name == name {
			s.players[i].Active = active
			return nil
		}
	}
	return fmt.Errorf("unknown player %q", name)
}

func (s *Session) hasPlayer(name string) bool {
	return slices.ContainsFunc(s.players, func(p Player) bool { return p.Name == name })
}

// Players iterates over the roster in insertion order.
func (s *Session) Players() iter.Seq[Player] {
	return func(yield func(Player) bool) {
		for _, p := range s.players {
			if !yield(p) {
				return
			}
		}
	}
}

// Roster returns the authoritative list of player names, in insertion order.
func (s *Session) Roster() []string {
	names := make([]string, len(s.players))
	for i, p := range s.players {
		names[i] = p.Name
	}
	return names
}

// checkEntry validates a mutation before it reaches the ledger. Negative
// amounts are rejected here: corrections go through SetCashOut instead.
func (s *Session) checkEntry(name string, amount decimal.Decimal) error {
	if !s.hasPlayer(name) {
		return fmt.Errorf("unknown player %q", name)
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", amount)
	}
	return nil
}

// RecordBuyIn records a buy-in or rebuy for a known player.
func (s *Session) RecordBuyIn(name string, amount decimal.Decimal) error {
	if err := s.checkEntry(name, amount); err != nil {
		return fmt.Errorf("cannot record buy-in: %w", err)
	}
	s.ledger.RecordBuyIn(name, amount)
	return nil
}

// SetCashOut replaces a known player's cash-out with an absolute amount.
func (s *Session) SetCashOut(name string, amount decimal.Decimal) error {
	if err := s.checkEntry(name, amount); err != nil {
		return fmt.Errorf("cannot set cash-out: %w", err)
	}
	s.ledger.SetCashOut(name, amount)
	return nil
}

// AddCashOut increments a known player's cash-out total.
func (s *Session) AddCashOut(name string, amount decimal.Decimal) error {
	if err := s.checkEntry(name, amount); err != nil {
		return fmt.Errorf("cannot add cash-out: %w", err)
	}
	s.ledger.AddCashOut(name, amount)
	return nil
}

// Balances returns the net balance of every roster member.
func (s *Session) Balances() map[string]decimal.Decimal {
	return s.ledger.Balances(s.Roster())
}

// Settlement computes the transfers that settle the current balances. It is
// recomputed from scratch on every call and never stored.
func (s *Session) Settlement() []Transfer {
	return Settle(s.Roster(), s.Balances())
}

// Balanced reports whether total buy-ins match total cash-outs to the cent.
func (s *Session) Balanced() bool {
	return s.ledger.Unmatched().IsZero()
}
