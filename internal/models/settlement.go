package models

import "github.com/shopspring/decimal"

// Settlement is a single proposed payment from one member to another.
// It is a computed projection, produced fresh on every planning run; it has
// no identity or lifecycle of its own. Recording that a payment actually
// happened is SettlementRecord's job.
type Settlement struct {
	// FromID is the member who should pay.
	FromID string

	// From is the paying member's display name.
	From string

	// ToID is the member who should receive the payment.
	ToID string

	// To is the receiving member's display name.
	To string

	// Amount is the payment amount, always positive.
	Amount decimal.Decimal
}

// SettlementRecord represents a payment between trip members that the group
// marked as settled. Recorded payments are netted out of future plans.
type SettlementRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	// TripID is the trip this record belongs to.
	TripID string

	// FromMemberID is the member who paid.
	FromMemberID string

	// ToMemberID is the member who received the payment.
	ToMemberID string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64

	// CreatedBy is the user ID who recorded the payment.
	CreatedBy string

	// Note is an optional description.
	Note string
}
