// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/tripsettle/internal/models"
)

// Store defines the interface for trip, expense and settlement persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser inserts a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns (nil, nil) if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateTrip persists a new trip. The trip.ID and trip.CreatedAt
	// fields are populated by the store if unset.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by ID, roster included.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTripsByUser retrieves every trip the user owns or is a linked
	// member of, newest first.
	ListTripsByUser(ctx context.Context, userID string) ([]*models.Trip, error)

	// DeleteTrip removes a trip and everything attached to it.
	DeleteTrip(ctx context.Context, tripID string) error

	// AddMember adds a member to a trip's roster.
	AddMember(ctx context.Context, member *models.Member) error

	// RemoveMember removes a member from a trip's roster. Callers must
	// check MemberHasExpenses first; removal of a referenced member breaks
	// every stored split it appears in.
	RemoveMember(ctx context.Context, tripID, memberID string) error

	// MemberHasExpenses reports whether the member is the payer or a split
	// participant of any stored expense on the trip.
	MemberHasExpenses(ctx context.Context, tripID, memberID string) (bool, error)

	// CreateExpense persists a new expense with its split details.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID, split and comments included.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces an existing expense and its split details.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpensesByTrip retrieves all expenses for a trip, newest first.
	ListExpensesByTrip(ctx context.Context, tripID string) ([]*models.Expense, error)

	// AddComment attaches a comment to an expense.
	AddComment(ctx context.Context, comment *models.Comment) error

	// CreateSettlement persists a recorded payment between members.
	CreateSettlement(ctx context.Context, record *models.SettlementRecord) error

	// ListSettlementsByTrip retrieves all recorded payments for a trip,
	// newest first.
	ListSettlementsByTrip(ctx context.Context, tripID string) ([]*models.SettlementRecord, error)

	// DeleteSettlement removes a recorded payment.
	DeleteSettlement(ctx context.Context, settlementID string) error

	// Close releases any resources held by the store.
	Close() error
}
