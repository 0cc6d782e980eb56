// Package api defines the wire types for the tripsettle Connect services and
// the JSON codec they travel over. Money fields use decimal.Decimal, which
// marshals as a quoted decimal string, so amounts cross the wire losslessly.
package api

import "github.com/shopspring/decimal"

// User is the wire representation of a registered account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

// Member is the wire representation of one roster entry on a trip.
type Member struct {
	ID     string `json:"id"`
	TripID string `json:"tripId"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	UserID string `json:"userId,omitempty"`
}

// Trip is the wire representation of a trip with its roster.
type Trip struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	OwnerID   string    `json:"ownerId"`
	Members   []*Member `json:"members"`
	CreatedAt int64     `json:"createdAt"`
}

// AmountShare is one participant's explicit amount in a byAmount split.
type AmountShare struct {
	MemberID string          `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
}

// PercentShare is one participant's percentage in a byPercentage split.
type PercentShare struct {
	MemberID string          `json:"memberId"`
	Percent  decimal.Decimal `json:"percent"`
}

// Split describes how an expense divides among members. Type selects the
// rule; exactly one of Participants, Amounts or Percents is set, matching it.
type Split struct {
	Type         string          `json:"type"`
	Participants []string        `json:"participants,omitempty"`
	Amounts      []*AmountShare  `json:"amounts,omitempty"`
	Percents     []*PercentShare `json:"percents,omitempty"`
}

// Comment is the wire representation of a note on an expense.
type Comment struct {
	ID        string `json:"id"`
	ExpenseID string `json:"expenseId"`
	AuthorID  string `json:"authorId"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"createdAt"`
}

// Expense is the wire representation of an expense with its split rule.
type Expense struct {
	ID          string          `json:"id"`
	TripID      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidByID    string          `json:"paidById"`
	Category    string          `json:"category,omitempty"`
	Split       *Split          `json:"split"`
	Date        int64           `json:"date"`
	CreatedAt   int64           `json:"createdAt"`
	Comments    []*Comment      `json:"comments,omitempty"`
}

// Balance is one member's net position on a trip. Positive means the group
// owes the member; negative means the member owes the group.
type Balance struct {
	MemberID string          `json:"memberId"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
}

// Transfer is one proposed payment in a settlement plan.
type Transfer struct {
	FromID string          `json:"fromId"`
	From   string          `json:"from"`
	ToID   string          `json:"toId"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// SettlementRecord is the wire representation of a payment the group marked
// as settled.
type SettlementRecord struct {
	ID           string          `json:"id"`
	TripID       string          `json:"tripId"`
	FromMemberID string          `json:"fromMemberId"`
	ToMemberID   string          `json:"toMemberId"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    int64           `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// AuthService messages.

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// TripService messages.

type CreateTripRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
	// MemberNames seeds the roster; the creator is always added as a member
	// linked to their account.
	MemberNames []string `json:"memberNames,omitempty"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripID string `json:"tripId"`
}

type GetTripResponse struct {
	Trip *Trip `json:"trip"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []*Trip `json:"trips"`
}

type DeleteTripRequest struct {
	TripID string `json:"tripId"`
}

type DeleteTripResponse struct{}

type AddMemberRequest struct {
	TripID string `json:"tripId"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
}

type AddMemberResponse struct {
	Member *Member `json:"member"`
}

type RemoveMemberRequest struct {
	TripID   string `json:"tripId"`
	MemberID string `json:"memberId"`
}

type RemoveMemberResponse struct{}

// ExpenseService messages.

type CreateExpenseRequest struct {
	TripID      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidByID    string          `json:"paidById"`
	Category    string          `json:"category,omitempty"`
	Date        int64           `json:"date,omitempty"`
	Split       *Split          `json:"split"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
	// Shares is the per-member cost implied by the split rule.
	Shares map[string]decimal.Decimal `json:"shares"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type GetExpenseResponse struct {
	Expense *Expense                   `json:"expense"`
	Shares  map[string]decimal.Decimal `json:"shares"`
}

type UpdateExpenseRequest struct {
	ExpenseID   string          `json:"expenseId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidByID    string          `json:"paidById"`
	Category    string          `json:"category,omitempty"`
	Date        int64           `json:"date,omitempty"`
	Split       *Split          `json:"split"`
}

type UpdateExpenseResponse struct {
	Expense *Expense                   `json:"expense"`
	Shares  map[string]decimal.Decimal `json:"shares"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct {
	TripID string `json:"tripId"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type AddCommentRequest struct {
	ExpenseID string `json:"expenseId"`
	AuthorID  string `json:"authorId"`
	Body      string `json:"body"`
}

type AddCommentResponse struct {
	Comment *Comment `json:"comment"`
}

// SettlementService messages.

type GetBalancesRequest struct {
	TripID string `json:"tripId"`
}

type GetBalancesResponse struct {
	Balances []*Balance `json:"balances"`
}

type CalculateSettlementsRequest struct {
	TripID string `json:"tripId"`
}

type CalculateSettlementsResponse struct {
	Settlements []*Transfer `json:"settlements"`
}

type RecordSettlementRequest struct {
	TripID       string          `json:"tripId"`
	FromMemberID string          `json:"fromMemberId"`
	ToMemberID   string          `json:"toMemberId"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
}

type RecordSettlementResponse struct {
	Settlement *SettlementRecord `json:"settlement"`
}

type ListSettlementsRequest struct {
	TripID string `json:"tripId"`
}

type ListSettlementsResponse struct {
	Settlements []*SettlementRecord `json:"settlements"`
}

type DeleteSettlementRequest struct {
	TripID       string `json:"tripId"`
	SettlementID string `json:"settlementId"`
}

type DeleteSettlementResponse struct{}
