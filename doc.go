// Package payx computes final per-client account balances from an
// ordered stream of financial transactions. It is a ledger-replay
// engine: given a transaction history, it deterministically
// reconstructs the resulting available, held and locked state of every
// client account.
//
// The core pieces:
//   - Effect engine: a pure function computing the exact monetary and
//     status effect of one transaction against an account's current
//     state, without mutating anything.
//   - Account state machine: the single owner of one client's log,
//     active disputes and balances, applying effects atomically and
//     rejecting operations on locked accounts.
//   - Book: routes each transaction to its client's account, creating
//     accounts on first sight, and isolates one client's failures from
//     all others.
//   - CSV codec: decodes the type,client,tx,amount input records and
//     encodes the client,available,held,total,locked result rows with
//     exact decimal text.
//
// This package serves as the foundational logic for the `payx`
// command-line tool.
package payx
