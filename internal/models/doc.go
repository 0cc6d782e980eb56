// Package models defines the core domain models for Tripsettle.
//
// # Models
//
//   - Trip: a group of members sharing expenses in one currency
//   - Member: a participant on a trip's roster
//   - Expense: a cost paid by one member and divided among members
//     under one of three split rules (see Split)
//   - Settlement: a computed point-to-point payment proposal
//   - SettlementRecord: a payment the group recorded as actually made
//   - User: a registered account (authentication)
//
// # Design Principles
//
//  1. **Split rules are a sealed variant**: EqualSplit, AmountSplit and
//     PercentageSplit implement the Split interface, so an expense cannot
//     carry amounts for an equal split or percentages for an amount split.
//  2. **Money is exact**: amounts are decimal.Decimal at the boundary and
//     integer minor units inside the calculator; float64 never touches money.
//  3. **Avoid circular references**: relationships use ID strings, not
//     pointers.
//  4. **Dates are opaque**: Date and CreatedAt are Unix-second ordering keys
//     supplied by the caller; nothing in the engine interprets them.
package models
