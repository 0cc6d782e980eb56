package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsettle/internal/models"
)

// CreateTrip persists a new trip to the database.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}
	if trip.Currency == "" {
		trip.Currency = "USD"
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trips (id, name, currency, owner_id, created_at) VALUES (?, ?, ?, ?, ?)",
		trip.ID, trip.Name, trip.Currency, trip.OwnerID, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID, including its member roster.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip := &models.Trip{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, currency, owner_id, created_at FROM trips WHERE id = ?",
		tripID,
	).Scan(&trip.ID, &trip.Name, &trip.Currency, &trip.OwnerID, &trip.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trip not found: %s", tripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	members, err := s.listMembers(ctx, tripID)
	if err != nil {
		return nil, err
	}
	trip.Members = members

	return trip, nil
}

// ListTripsByUser retrieves trips the user owns or is a linked member of.
func (s *SQLiteStore) ListTripsByUser(ctx context.Context, userID string) ([]*models.Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT t.id, t.name, t.currency, t.owner_id, t.created_at
		 FROM trips t
		 LEFT JOIN members m ON m.trip_id = t.id
		 WHERE t.owner_id = ? OR m.user_id = ?
		 ORDER BY t.created_at DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip := &models.Trip{}
		if err := rows.Scan(&trip.ID, &trip.Name, &trip.Currency, &trip.OwnerID, &trip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	for _, trip := range trips {
		members, err := s.listMembers(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		trip.Members = members
	}

	return trips, nil
}

// DeleteTrip removes a trip; members, expenses and settlements cascade.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check trip deletion: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("trip not found: %s", tripID)
	}
	return nil
}

// AddMember adds a member to a trip's roster.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}

	var email, userID interface{}
	if member.Email != "" {
		email = member.Email
	}
	if member.UserID != "" {
		userID = member.UserID
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members (id, trip_id, name, email, user_id) VALUES (?, ?, ?, ?, ?)",
		member.ID, member.TripID, member.Name, email, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// RemoveMember removes a member from a trip's roster.
func (s *SQLiteStore) RemoveMember(ctx context.Context, tripID, memberID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM members WHERE id = ? AND trip_id = ?",
		memberID, tripID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check member deletion: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("member not found: %s", memberID)
	}
	return nil
}

// MemberHasExpenses reports whether the member is the payer or a split
// participant of any stored expense on the trip.
func (s *SQLiteStore) MemberHasExpenses(ctx context.Context, tripID, memberID string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM expenses e
		 LEFT JOIN expense_splits sp ON sp.expense_id = e.id
		 WHERE e.trip_id = ? AND (e.paid_by = ? OR sp.member_id = ?)
		 LIMIT 1`,
		tripID, memberID, memberID,
	).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check member expenses: %w", err)
	}
	return true, nil
}

// listMembers loads a trip's roster ordered by name for stable display.
func (s *SQLiteStore) listMembers(ctx context.Context, tripID string) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, trip_id, name, email, user_id FROM members WHERE trip_id = ? ORDER BY name, id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var member models.Member
		var email, userID sql.NullString
		if err := rows.Scan(&member.ID, &member.TripID, &member.Name, &email, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		if email.Valid {
			member.Email = email.String
		}
		if userID.Valid {
			member.UserID = userID.String
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}
