package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsettle/internal/calculator"
	"github.com/mmynk/tripsettle/internal/models"
)

// CreateExpense persists a new expense and its split details atomically.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.Split == nil {
		return fmt.Errorf("expense has no split")
	}
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.Date == 0 {
		expense.Date = expense.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, description, amount_cents, paid_by, category, split_type, expense_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, expense.Description, calculator.Cents(expense.Amount),
		expense.PaidByID, expense.Category, string(expense.Split.Type()), expense.Date, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertSplitRows(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including split details and comments.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var amountCents int64
	var splitType string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, description, amount_cents, paid_by, category, split_type, expense_date, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.TripID, &expense.Description, &amountCents,
		&expense.PaidByID, &expense.Category, &splitType, &expense.Date, &expense.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense not found: %s", expenseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.Amount = calculator.FromCents(amountCents)

	split, err := s.loadSplit(ctx, expense.ID, models.SplitType(splitType))
	if err != nil {
		return nil, err
	}
	expense.Split = split

	comments, err := s.loadComments(ctx, expense.ID)
	if err != nil {
		return nil, err
	}
	expense.Comments = comments

	return expense, nil
}

// UpdateExpense replaces an existing expense and its split details.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.Split == nil {
		return fmt.Errorf("expense has no split")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses
		 SET description = ?, amount_cents = ?, paid_by = ?, category = ?, split_type = ?, expense_date = ?
		 WHERE id = ?`,
		expense.Description, calculator.Cents(expense.Amount), expense.PaidByID,
		expense.Category, string(expense.Split.Type()), expense.Date, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check expense update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense not found: %s", expense.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear split details: %w", err)
	}
	if err := insertSplitRows(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense; split rows and comments cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check expense deletion: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense not found: %s", expenseID)
	}
	return nil
}

// ListExpensesByTrip retrieves all expenses for a trip, newest first.
func (s *SQLiteStore) ListExpensesByTrip(ctx context.Context, tripID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM expenses WHERE trip_id = ? ORDER BY expense_date DESC, created_at DESC, id`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan expense id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	expenses := make([]*models.Expense, 0, len(ids))
	for _, id := range ids {
		expense, err := s.GetExpense(ctx, id)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// AddComment attaches a comment to an expense.
func (s *SQLiteStore) AddComment(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt == 0 {
		comment.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO expense_comments (id, expense_id, author_id, body, created_at) VALUES (?, ?, ?, ?, ?)",
		comment.ID, comment.ExpenseID, comment.AuthorID, comment.Body, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// insertSplitRows writes one row per split participant. The variant decides
// which detail column is populated; the others stay NULL.
func insertSplitRows(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	insert := func(memberID string, position int, amount, percent interface{}) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, member_id, position, amount_cents, percent) VALUES (?, ?, ?, ?, ?)",
			expense.ID, memberID, position, amount, percent,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split row: %w", err)
		}
		return nil
	}

	switch split := expense.Split.(type) {
	case models.EqualSplit:
		for i, id := range split.Participants {
			if err := insert(id, i, nil, nil); err != nil {
				return err
			}
		}
	case models.AmountSplit:
		for i, e := range split.Entries {
			if err := insert(e.MemberID, i, calculator.Cents(e.Amount), nil); err != nil {
				return err
			}
		}
	case models.PercentageSplit:
		for i, e := range split.Entries {
			if err := insert(e.MemberID, i, nil, e.Percent.String()); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported split type %q", expense.Split.Type())
	}
	return nil
}

// loadSplit rebuilds the split variant from its rows, in stored order.
func (s *SQLiteStore) loadSplit(ctx context.Context, expenseID string, splitType models.SplitType) (models.Split, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT member_id, amount_cents, percent FROM expense_splits WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get split details: %w", err)
	}
	defer rows.Close()

	var (
		equal     models.EqualSplit
		byAmount  models.AmountSplit
		byPercent models.PercentageSplit
	)
	for rows.Next() {
		var memberID string
		var amountCents sql.NullInt64
		var percent sql.NullString
		if err := rows.Scan(&memberID, &amountCents, &percent); err != nil {
			return nil, fmt.Errorf("failed to scan split row: %w", err)
		}

		switch splitType {
		case models.SplitEqually:
			equal.Participants = append(equal.Participants, memberID)
		case models.SplitByAmount:
			if !amountCents.Valid {
				return nil, fmt.Errorf("split row for %s missing amount", memberID)
			}
			byAmount.Entries = append(byAmount.Entries, models.AmountEntry{
				MemberID: memberID,
				Amount:   calculator.FromCents(amountCents.Int64),
			})
		case models.SplitByPercentage:
			if !percent.Valid {
				return nil, fmt.Errorf("split row for %s missing percentage", memberID)
			}
			pct, err := decimal.NewFromString(percent.String)
			if err != nil {
				return nil, fmt.Errorf("bad percentage %q for %s: %w", percent.String, memberID, err)
			}
			byPercent.Entries = append(byPercent.Entries, models.PercentEntry{
				MemberID: memberID,
				Percent:  pct,
			})
		default:
			return nil, fmt.Errorf("unknown split type %q", splitType)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split rows: %w", err)
	}

	switch splitType {
	case models.SplitEqually:
		return equal, nil
	case models.SplitByAmount:
		return byAmount, nil
	default:
		return byPercent, nil
	}
}

// loadComments loads an expense's comments, oldest first.
func (s *SQLiteStore) loadComments(ctx context.Context, expenseID string) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, expense_id, author_id, body, created_at FROM expense_comments WHERE expense_id = ? ORDER BY created_at, id",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ExpenseID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}
