package calculator

import "errors"

var (
	// ErrUnknownMember indicates an expense references a payer or split
	// participant that is not on the supplied roster.
	ErrUnknownMember = errors.New("unknown member")

	// ErrInvalidSplit indicates split amounts or percentages fail to
	// reconcile with the expense total beyond tolerance, or the split is
	// otherwise malformed (duplicate participant, negative entry,
	// non-positive amount).
	ErrInvalidSplit = errors.New("invalid split")

	// ErrEmptySplit indicates an expense lists no split participants.
	ErrEmptySplit = errors.New("empty split")

	// ErrUnbalancedLedger indicates the net balances handed to the planner
	// do not sum to zero. This is a defect in aggregation or corrupted
	// upstream data, not a user-input mistake; callers should log it
	// rather than swallow it.
	ErrUnbalancedLedger = errors.New("unbalanced ledger")
)
