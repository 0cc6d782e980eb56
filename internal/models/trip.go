package models

// Trip represents a group of members sharing expenses.
// All amounts on a trip are denominated in a single currency.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip (e.g., "Lisbon 2026").
	Name string

	// Currency is the ISO 4217 code used for every expense on the trip.
	// It is a display concern only; the engine never converts currencies.
	Currency string

	// OwnerID is the user ID of the trip creator.
	OwnerID string

	// Members is the trip roster. Populated on reads; ignored on writes
	// (members are managed through AddMember/RemoveMember).
	Members []Member

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// Member represents one participant on a trip's roster.
// A member who is a payer or a split participant of any stored expense
// cannot be removed.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// TripID is the trip this member belongs to.
	TripID string

	// Name is the display name shown in settlements.
	Name string

	// Email is optional; used to link the member to a registered user.
	Email string

	// UserID links this roster entry to a registered account, if any.
	UserID string
}

// Comment is a short note attached to an expense.
type Comment struct {
	// ID is the unique identifier for the comment (UUID format).
	ID string

	// ExpenseID is the expense this comment belongs to.
	ExpenseID string

	// AuthorID is the member who wrote the comment.
	AuthorID string

	// Body is the comment text.
	Body string

	// CreatedAt is the Unix timestamp when the comment was created.
	CreatedAt int64
}
