// Package pokerbank provides the accounting core for informal cash-game poker
// sessions: it tracks every participant's buy-ins and cash-outs and computes
// the minimal set of peer-to-peer transfers that settles all balances.
//
// The core functionalities include:
//   - Ledger: per-participant cumulative buy-in and cash-out amounts, with
//     derived net balances over a caller-supplied roster.
//   - Settlement: a pure, deterministic greedy resolver turning net balances
//     into a short list of debtor-to-creditor transfers.
//   - Session: the single owner of a game's state (roster, settings, ledger),
//     enforcing the validation the core deliberately leaves to its caller.
//   - Persistence: encoding and decoding of session snapshots to a
//     human-readable JSON format, plus JSON and CSV exports.
//
// This package serves as the foundational logic for the `pkb` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package pokerbank
