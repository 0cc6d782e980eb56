package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/tripsettle/internal/calculator"
	"github.com/mmynk/tripsettle/internal/models"
	"github.com/mmynk/tripsettle/internal/storage"
	"github.com/mmynk/tripsettle/pkg/api"
)

var settlementPlans = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tripsettle_settlement_plans_total",
	Help: "Settlement plans computed.",
})

// SettlementService implements the trip.v1.SettlementService procedures.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given storage
// backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// tripBalances loads the trip's expenses and recorded settlements and folds
// them into per-member net balances. Stored data was validated on write, so
// any engine failure here is a defect and maps to CodeInternal.
func (s *SettlementService) tripBalances(ctx context.Context, trip *models.Trip) (map[string]int64, error) {
	expenses, err := s.store.ListExpensesByTrip(ctx, trip.ID)
	if err != nil {
		slog.Error("Failed to list expenses", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	modelExpenses := make([]models.Expense, len(expenses))
	for i, e := range expenses {
		modelExpenses[i] = *e
	}

	balances, err := calculator.Aggregate(modelExpenses, trip.Members)
	if err != nil {
		slog.Error("Balance aggregation failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	records, err := s.store.ListSettlementsByTrip(ctx, trip.ID)
	if err != nil {
		slog.Error("Failed to list settlements", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	modelRecords := make([]models.SettlementRecord, len(records))
	for i, r := range records {
		modelRecords[i] = *r
	}

	if err := calculator.ApplySettlements(balances, modelRecords); err != nil {
		slog.Error("Failed to apply recorded settlements", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return balances, nil
}

// GetBalances returns each member's net position on the trip, recorded
// settlements netted out. Positive means the group owes the member.
func (s *SettlementService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}

	balances, err := s.tripBalances(ctx, trip)
	if err != nil {
		return nil, err
	}

	wireBalances := make([]*api.Balance, len(trip.Members))
	for i, m := range trip.Members {
		wireBalances[i] = &api.Balance{
			MemberID: m.ID,
			Name:     m.Name,
			Amount:   calculator.FromCents(balances[m.ID]),
		}
	}
	return connect.NewResponse(&api.GetBalancesResponse{Balances: wireBalances}), nil
}

// CalculateSettlements computes the plan of payments that settles the trip's
// outstanding balances.
func (s *SettlementService) CalculateSettlements(ctx context.Context, req *connect.Request[api.CalculateSettlementsRequest]) (*connect.Response[api.CalculateSettlementsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}

	balances, err := s.tripBalances(ctx, trip)
	if err != nil {
		return nil, err
	}

	plan, err := calculator.Plan(balances, trip.Members)
	if err != nil {
		if errors.Is(err, calculator.ErrUnbalancedLedger) {
			slog.Error("Settlement planning found an unbalanced ledger", "trip_id", trip.ID, "error", err)
		} else {
			slog.Error("Settlement planning failed", "trip_id", trip.ID, "error", err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	settlementPlans.Inc()

	transfers := make([]*api.Transfer, len(plan))
	for i, t := range plan {
		transfers[i] = &api.Transfer{
			FromID: t.FromID,
			From:   t.From,
			ToID:   t.ToID,
			To:     t.To,
			Amount: t.Amount,
		}
	}
	slog.Info("Settlement plan computed", "trip_id", trip.ID, "transfers", len(transfers))
	return connect.NewResponse(&api.CalculateSettlementsResponse{Settlements: transfers}), nil
}

// RecordSettlement marks a payment between two members as settled. Recorded
// payments are netted out of balances and future plans.
func (s *SettlementService) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}

	if findMember(trip, req.Msg.FromMemberID) == nil || findMember(trip, req.Msg.ToMemberID) == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("both members must be on the trip roster"))
	}
	if req.Msg.FromMemberID == req.Msg.ToMemberID {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("a member cannot settle with themselves"))
	}
	if !req.Msg.Amount.IsPositive() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be positive"))
	}

	record := &models.SettlementRecord{
		TripID:       trip.ID,
		FromMemberID: req.Msg.FromMemberID,
		ToMemberID:   req.Msg.ToMemberID,
		Amount:       req.Msg.Amount,
		CreatedBy:    userID,
		Note:         req.Msg.Note,
	}
	if err := s.store.CreateSettlement(ctx, record); err != nil {
		slog.Error("RecordSettlement failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Settlement recorded", "trip_id", trip.ID, "settlement_id", record.ID, "amount", record.Amount)
	return connect.NewResponse(&api.RecordSettlementResponse{Settlement: recordToWire(record)}), nil
}

// ListSettlements retrieves the trip's recorded payments, newest first.
func (s *SettlementService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListSettlementsByTrip(ctx, trip.ID)
	if err != nil {
		slog.Error("ListSettlements failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	wireRecords := make([]*api.SettlementRecord, len(records))
	for i, r := range records {
		wireRecords[i] = recordToWire(r)
	}
	return connect.NewResponse(&api.ListSettlementsResponse{Settlements: wireRecords}), nil
}

// DeleteSettlement removes a recorded payment, restoring it to the trip's
// outstanding balances.
func (s *SettlementService) DeleteSettlement(ctx context.Context, req *connect.Request[api.DeleteSettlementRequest]) (*connect.Response[api.DeleteSettlementResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListSettlementsByTrip(ctx, trip.ID)
	if err != nil {
		slog.Error("DeleteSettlement: failed to list settlements", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	found := false
	for _, r := range records {
		if r.ID == req.Msg.SettlementID {
			found = true
			break
		}
	}
	if !found {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("settlement %s not found on trip", req.Msg.SettlementID))
	}

	if err := s.store.DeleteSettlement(ctx, req.Msg.SettlementID); err != nil {
		slog.Error("DeleteSettlement failed", "settlement_id", req.Msg.SettlementID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Settlement deleted", "trip_id", trip.ID, "settlement_id", req.Msg.SettlementID)
	return connect.NewResponse(&api.DeleteSettlementResponse{}), nil
}
