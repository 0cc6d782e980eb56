package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsettle/internal/calculator"
	"github.com/mmynk/tripsettle/internal/models"
)

// CreateSettlement persists a recorded payment to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, record *models.SettlementRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().Unix()
	}

	var note interface{}
	if record.Note != "" {
		note = record.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, trip_id, from_member_id, to_member_id, amount_cents, created_at, created_by, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.TripID, record.FromMemberID, record.ToMemberID,
		calculator.Cents(record.Amount), record.CreatedAt, record.CreatedBy, note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}
	return nil
}

// ListSettlementsByTrip retrieves all recorded payments for a trip.
func (s *SQLiteStore) ListSettlementsByTrip(ctx context.Context, tripID string) ([]*models.SettlementRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, from_member_id, to_member_id, amount_cents, created_at, created_by, note
		 FROM settlements WHERE trip_id = ? ORDER BY created_at DESC, id`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var records []*models.SettlementRecord
	for rows.Next() {
		record := &models.SettlementRecord{}
		var amountCents int64
		var note sql.NullString
		if err := rows.Scan(&record.ID, &record.TripID, &record.FromMemberID, &record.ToMemberID,
			&amountCents, &record.CreatedAt, &record.CreatedBy, &note); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		record.Amount = calculator.FromCents(amountCents)
		if note.Valid {
			record.Note = note.String
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}
	return records, nil
}

// DeleteSettlement removes a recorded payment by ID.
func (s *SQLiteStore) DeleteSettlement(ctx context.Context, settlementID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM settlements WHERE id = ?", settlementID)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check settlement deletion: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("settlement not found: %s", settlementID)
	}
	return nil
}
