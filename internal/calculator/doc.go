// Package calculator implements the expense-splitting and debt-settlement
// engine: resolving each member's share of an expense, folding expenses into
// net balances, and planning a small set of payments that zeroes every
// balance.
//
// The whole package is pure computation over immutable inputs. It performs
// no I/O, keeps no state between calls, and is safe to invoke concurrently.
// Money is handled as int64 minor units (cents) internally; decimal values
// appear only at the package boundary.
package calculator
