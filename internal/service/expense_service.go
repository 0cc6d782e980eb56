package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsettle/internal/calculator"
	"github.com/mmynk/tripsettle/internal/models"
	"github.com/mmynk/tripsettle/internal/storage"
	"github.com/mmynk/tripsettle/pkg/api"
)

// ExpenseService implements the trip.v1.ExpenseService procedures.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpense records a new expense after validating its split against the
// trip roster. The response includes the per-member shares the split implies.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}

	split, err := splitFromWire(req.Msg.Split)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	expense := &models.Expense{
		TripID:      trip.ID,
		Description: req.Msg.Description,
		Amount:      req.Msg.Amount,
		PaidByID:    req.Msg.PaidByID,
		Category:    req.Msg.Category,
		Split:       split,
		Date:        req.Msg.Date,
	}
	if expense.Date == 0 {
		expense.Date = time.Now().Unix()
	}
	if expense.Description == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("description required"))
	}
	if !expense.Amount.IsPositive() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be positive"))
	}

	shares, err := calculator.ResolveShares(*expense, trip.Members)
	if err != nil {
		slog.Warn("CreateExpense: invalid split", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense created", "trip_id", trip.ID, "expense_id", expense.ID, "amount", expense.Amount)
	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: expenseToWire(expense),
		Shares:  sharesToWire(shares),
	}), nil
}

// GetExpense retrieves an expense with its comments and recomputed shares.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	trip, err := loadTripForUser(ctx, s.store, expense.TripID, userID)
	if err != nil {
		return nil, err
	}

	shares, err := calculator.ResolveShares(*expense, trip.Members)
	if err != nil {
		slog.Error("GetExpense: stored split failed to resolve", "expense_id", expense.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{
		Expense: expenseToWire(expense),
		Shares:  sharesToWire(shares),
	}), nil
}

// UpdateExpense replaces an expense's fields and split after revalidating.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("UpdateExpense: failed to get expense", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	trip, err := loadTripForUser(ctx, s.store, existing.TripID, userID)
	if err != nil {
		return nil, err
	}

	split, err := splitFromWire(req.Msg.Split)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	expense := &models.Expense{
		ID:          existing.ID,
		TripID:      existing.TripID,
		Description: req.Msg.Description,
		Amount:      req.Msg.Amount,
		PaidByID:    req.Msg.PaidByID,
		Category:    req.Msg.Category,
		Split:       split,
		Date:        req.Msg.Date,
		CreatedAt:   existing.CreatedAt,
	}
	if expense.Date == 0 {
		expense.Date = existing.Date
	}
	if expense.Description == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("description required"))
	}
	if !expense.Amount.IsPositive() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be positive"))
	}

	shares, err := calculator.ResolveShares(*expense, trip.Members)
	if err != nil {
		slog.Warn("UpdateExpense: invalid split", "expense_id", expense.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expense.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense updated", "trip_id", trip.ID, "expense_id", expense.ID)
	return connect.NewResponse(&api.UpdateExpenseResponse{
		Expense: expenseToWire(expense),
		Shares:  sharesToWire(shares),
	}), nil
}

// DeleteExpense removes an expense and its comments.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("DeleteExpense: failed to get expense", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if _, err := loadTripForUser(ctx, s.store, expense.TripID, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expense.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense deleted", "expense_id", expense.ID, "user_id", userID)
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ListExpenses retrieves all expenses for a trip, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, trip.ID)
	if err != nil {
		slog.Error("ListExpenses failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	wireExpenses := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		wireExpenses[i] = expenseToWire(e)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: wireExpenses}), nil
}

// AddComment attaches a note to an expense. The author must be on the trip
// roster; when AuthorID is empty the caller's linked member is used.
func (s *ExpenseService) AddComment(ctx context.Context, req *connect.Request[api.AddCommentRequest]) (*connect.Response[api.AddCommentResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("AddComment: failed to get expense", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	trip, err := loadTripForUser(ctx, s.store, expense.TripID, userID)
	if err != nil {
		return nil, err
	}
	if req.Msg.Body == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("comment body required"))
	}

	authorID := req.Msg.AuthorID
	if authorID == "" {
		for _, m := range trip.Members {
			if m.UserID == userID {
				authorID = m.ID
				break
			}
		}
	}
	if findMember(trip, authorID) == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("author must be a trip member"))
	}

	comment := &models.Comment{
		ExpenseID: expense.ID,
		AuthorID:  authorID,
		Body:      req.Msg.Body,
	}
	if err := s.store.AddComment(ctx, comment); err != nil {
		slog.Error("AddComment failed", "expense_id", expense.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.AddCommentResponse{Comment: commentToWire(*comment)}), nil
}
