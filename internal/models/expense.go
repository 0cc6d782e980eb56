package models

import "github.com/shopspring/decimal"

// SplitType identifies the rule dividing an expense among members.
type SplitType string

const (
	// SplitEqually divides the amount evenly among the listed participants.
	SplitEqually SplitType = "equally"
	// SplitByAmount assigns each participant an explicit amount.
	SplitByAmount SplitType = "byAmount"
	// SplitByPercentage assigns each participant a percentage of the total.
	SplitByPercentage SplitType = "byPercentage"
)

// Split is the sealed set of split rules. Exactly one of EqualSplit,
// AmountSplit or PercentageSplit backs every expense, so the fields that are
// meaningless for a rule cannot be populated at all.
type Split interface {
	// Type returns the rule's SplitType tag.
	Type() SplitType
	// ParticipantIDs returns the member IDs taking part in the split,
	// in the order they were supplied.
	ParticipantIDs() []string
}

// EqualSplit divides the expense amount evenly among ParticipantIDs.
// The calculator distributes any remainder cents deterministically.
type EqualSplit struct {
	Participants []string
}

func (s EqualSplit) Type() SplitType          { return SplitEqually }
func (s EqualSplit) ParticipantIDs() []string { return s.Participants }

// AmountEntry is one participant's explicit share of an AmountSplit.
type AmountEntry struct {
	MemberID string
	Amount   decimal.Decimal
}

// AmountSplit assigns each participant the amount in its entry.
// The entry amounts must reconcile with the expense total.
type AmountSplit struct {
	Entries []AmountEntry
}

func (s AmountSplit) Type() SplitType { return SplitByAmount }

func (s AmountSplit) ParticipantIDs() []string {
	ids := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		ids[i] = e.MemberID
	}
	return ids
}

// PercentEntry is one participant's percentage share of a PercentageSplit.
type PercentEntry struct {
	MemberID string
	Percent  decimal.Decimal
}

// PercentageSplit assigns each participant a percentage of the expense
// amount. The percentages must sum to 100.
type PercentageSplit struct {
	Entries []PercentEntry
}

func (s PercentageSplit) Type() SplitType { return SplitByPercentage }

func (s PercentageSplit) ParticipantIDs() []string {
	ids := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		ids[i] = e.MemberID
	}
	return ids
}

// Expense represents a cost paid by one member and divided among members
// under a split rule.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// Description is the human-readable name (e.g., "Dinner", "Taxi").
	Description string

	// Amount is the full cost of the expense, always positive.
	Amount decimal.Decimal

	// PaidByID is the member who paid the full amount.
	PaidByID string

	// Category is a free-form label (e.g., "food", "transport").
	Category string

	// Split is the rule dividing Amount among members.
	Split Split

	// Date is the Unix timestamp of when the expense occurred.
	// Treated as an opaque ordering key.
	Date int64

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// Comments are notes attached to the expense. Populated on reads.
	Comments []Comment
}
