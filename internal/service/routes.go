package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsettle/internal/auth"
	"github.com/mmynk/tripsettle/internal/middleware"
	"github.com/mmynk/tripsettle/internal/storage"
	"github.com/mmynk/tripsettle/pkg/api"
)

// NewHandler builds the HTTP mux with every Connect procedure mounted.
// Register and Login are public; everything else requires a valid token.
func NewHandler(store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager) *http.ServeMux {
	authSvc := NewAuthService(authenticator, jwtManager, store)
	tripSvc := NewTripService(store)
	expenseSvc := NewExpenseService(store)
	settlementSvc := NewSettlementService(store)

	public := []connect.HandlerOption{
		api.WithJSONCodec(),
		connect.WithInterceptors(
			middleware.MetricsInterceptor(),
			middleware.LoggingInterceptor(),
		),
	}
	protected := []connect.HandlerOption{
		api.WithJSONCodec(),
		connect.WithInterceptors(
			middleware.MetricsInterceptor(),
			middleware.RequireAuth(jwtManager),
			middleware.LoggingInterceptor(),
		),
	}

	mux := http.NewServeMux()

	mux.Handle(api.AuthServiceRegisterProcedure,
		connect.NewUnaryHandler(api.AuthServiceRegisterProcedure, authSvc.Register, public...))
	mux.Handle(api.AuthServiceLoginProcedure,
		connect.NewUnaryHandler(api.AuthServiceLoginProcedure, authSvc.Login, public...))
	mux.Handle(api.AuthServiceGetCurrentUserProcedure,
		connect.NewUnaryHandler(api.AuthServiceGetCurrentUserProcedure, authSvc.GetCurrentUser, protected...))

	mux.Handle(api.TripServiceCreateTripProcedure,
		connect.NewUnaryHandler(api.TripServiceCreateTripProcedure, tripSvc.CreateTrip, protected...))
	mux.Handle(api.TripServiceGetTripProcedure,
		connect.NewUnaryHandler(api.TripServiceGetTripProcedure, tripSvc.GetTrip, protected...))
	mux.Handle(api.TripServiceListTripsProcedure,
		connect.NewUnaryHandler(api.TripServiceListTripsProcedure, tripSvc.ListTrips, protected...))
	mux.Handle(api.TripServiceDeleteTripProcedure,
		connect.NewUnaryHandler(api.TripServiceDeleteTripProcedure, tripSvc.DeleteTrip, protected...))
	mux.Handle(api.TripServiceAddMemberProcedure,
		connect.NewUnaryHandler(api.TripServiceAddMemberProcedure, tripSvc.AddMember, protected...))
	mux.Handle(api.TripServiceRemoveMemberProcedure,
		connect.NewUnaryHandler(api.TripServiceRemoveMemberProcedure, tripSvc.RemoveMember, protected...))

	mux.Handle(api.ExpenseServiceCreateExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceCreateExpenseProcedure, expenseSvc.CreateExpense, protected...))
	mux.Handle(api.ExpenseServiceGetExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceGetExpenseProcedure, expenseSvc.GetExpense, protected...))
	mux.Handle(api.ExpenseServiceUpdateExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceUpdateExpenseProcedure, expenseSvc.UpdateExpense, protected...))
	mux.Handle(api.ExpenseServiceDeleteExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceDeleteExpenseProcedure, expenseSvc.DeleteExpense, protected...))
	mux.Handle(api.ExpenseServiceListExpensesProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceListExpensesProcedure, expenseSvc.ListExpenses, protected...))
	mux.Handle(api.ExpenseServiceAddCommentProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceAddCommentProcedure, expenseSvc.AddComment, protected...))

	mux.Handle(api.SettlementServiceGetBalancesProcedure,
		connect.NewUnaryHandler(api.SettlementServiceGetBalancesProcedure, settlementSvc.GetBalances, protected...))
	mux.Handle(api.SettlementServiceCalculateSettlementsProcedure,
		connect.NewUnaryHandler(api.SettlementServiceCalculateSettlementsProcedure, settlementSvc.CalculateSettlements, protected...))
	mux.Handle(api.SettlementServiceRecordSettlementProcedure,
		connect.NewUnaryHandler(api.SettlementServiceRecordSettlementProcedure, settlementSvc.RecordSettlement, protected...))
	mux.Handle(api.SettlementServiceListSettlementsProcedure,
		connect.NewUnaryHandler(api.SettlementServiceListSettlementsProcedure, settlementSvc.ListSettlements, protected...))
	mux.Handle(api.SettlementServiceDeleteSettlementProcedure,
		connect.NewUnaryHandler(api.SettlementServiceDeleteSettlementProcedure, settlementSvc.DeleteSettlement, protected...))

	return mux
}
